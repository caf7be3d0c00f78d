package locate

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"hash"
)

const pathSeparator = '/'

// PopEvent is delivered when a stack level is popped: the full path formed
// by the segments present at pop time (including the popped segment
// itself), that level's finalized digest, and the path of its immediate
// parent (the segments remaining on the stack after the pop).
type PopEvent struct {
	Path       []byte
	Digest     string
	ParentPath []byte
}

type stackLevel struct {
	segment []byte
	state   hash.Hash
}

// HashStack is the incremental recursive-content digest engine described in
// spec.md §4.6. Segments of a directory path are pushed and popped as the
// decoder's depth-first stream advances; every digest state present on the
// stack is updated with every directory's serialized entry list, so a
// level's digest reflects everything beneath it by the time it pops.
type HashStack struct {
	algo  DigestAlgorithm
	stack []stackLevel

	// PushObserver and PopObserver are optional hooks notified on push and
	// pop respectively. Modeled as function fields rather than a two-method
	// interface (spec.md §9) since Go closures make that ceremony needless.
	PushObserver func(segment []byte)
	PopObserver  func(event PopEvent)
}

// NewHashStack constructs an empty stack using algo for every digest state.
func NewHashStack(algo DigestAlgorithm) *HashStack {
	return &HashStack{algo: algo}
}

// EMPTY_DIGEST is the digest of the empty byte string under the default
// algorithm, SHA-256.
var EMPTY_DIGEST = sha256HexOf(nil)

// EMPTY_DIR_DIGEST is the digest of the canonical serialization of an empty
// entry list under SHA-256 — directories whose final digest equals this are
// trivially "duplicates" of one another and excluded from reporting.
var EMPTY_DIR_DIGEST = sha256HexOf(encodeEntries(nil))

func sha256HexOf(b []byte) string {
	return digestHexOf(DigestSHA256, b)
}

func digestHexOf(algo DigestAlgorithm, b []byte) string {
	h := algo.New()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

// EmptyDirDigest returns the digest of an empty entry list under algo,
// matching whichever algorithm a HashStack was constructed with — the
// fixed EMPTY_DIR_DIGEST constant only holds for the default, SHA-256.
func (s *HashStack) EmptyDirDigest() string {
	return digestHexOf(s.algo, encodeEntries(nil))
}

// Select advances the stack to path: it splits path on '/', computes the
// longest common prefix of segments already on the stack, pops everything
// beyond that prefix (each pop finalizes a digest and notifies PopObserver),
// then pushes the new trailing segments (each notifying PushObserver).
func (s *HashStack) Select(path []byte) {
	segments := splitSegments(path)

	common := 0
	for common < len(segments) && common < len(s.stack) &&
		bytes.Equal(segments[common], s.stack[common].segment) {
		common++
	}

	for len(s.stack) > common {
		s.pop()
	}
	for _, seg := range segments[common:] {
		s.push(seg)
	}
}

// Flush pops every remaining level, in order, finalizing each digest. Call
// once the directory stream is exhausted to flush the final path's ancestry.
func (s *HashStack) Flush() {
	for len(s.stack) > 0 {
		s.pop()
	}
}

func (s *HashStack) push(segment []byte) {
	s.stack = append(s.stack, stackLevel{segment: segment, state: s.algo.New()})
	if s.PushObserver != nil {
		s.PushObserver(segment)
	}
}

func (s *HashStack) pop() {
	top := s.stack[len(s.stack)-1]
	digest := hex.EncodeToString(top.state.Sum(nil))
	full := s.joinSegments()
	s.stack = s.stack[:len(s.stack)-1]
	parent := s.joinSegments()
	if s.PopObserver != nil {
		s.PopObserver(PopEvent{Path: full, Digest: digest, ParentPath: parent})
	}
}

func (s *HashStack) joinSegments() []byte {
	segs := make([][]byte, len(s.stack))
	for i, l := range s.stack {
		segs[i] = l.segment
	}
	return bytes.Join(segs, []byte{pathSeparator})
}

// SumContents serializes entries canonically and updates every digest state
// currently on the stack with that chunk. It returns a standalone digest of
// the chunk alone, useful as a per-directory identity independent of
// ancestry.
func (s *HashStack) SumContents(entries []Entry) string {
	chunk := encodeEntries(entries)
	for _, l := range s.stack {
		l.state.Write(chunk)
	}
	return digestHexOf(s.algo, chunk)
}

// Depth reports the current stack depth (number of segments pushed and not
// yet popped).
func (s *HashStack) Depth() int {
	return len(s.stack)
}

// splitSegments splits path on '/'. A leading empty segment from an
// absolute path is preserved as segment "" — matching spec.md §4.6.
func splitSegments(path []byte) [][]byte {
	return bytes.Split(path, []byte{pathSeparator})
}

// encodeEntries renders entries as the canonical chunk hashed into every
// ancestor's digest state: a bracket-delimited, comma-separated list of
// (flag, %q-quoted-name) pairs. %q guarantees an unambiguous, byte-exact
// escape of arbitrary byte sequences — the Go analog of the reference
// implementation's repr()-based serialization.
func encodeEntries(entries []Entry) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(", ")
		}
		flag := 0
		if e.IsSubdir {
			flag = 1
		}
		fmt.Fprintf(&buf, "(%d, %q)", flag, e.Name)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
