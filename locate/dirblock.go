package locate

import (
	"encoding/binary"
	"regexp"
	"time"

	"github.com/pkg/errors"
)

// Entry is one (flag, name) pair recorded inside a directory block. IsSubdir
// is true when the entry itself names a directory tracked elsewhere in the
// database, matching the mlocate on-disk tag byte (1 = subdirectory,
// 0 = file, 2 reserved for end-of-block and never surfaces here).
type Entry struct {
	IsSubdir bool
	Name     []byte
}

// DirBlock is one decoded directory record: its path, last-modified time,
// and the ordered list of entries it directly contains.
type DirBlock struct {
	Path      []byte
	MTime     time.Time
	Entries   []Entry
	Selection []Entry
}

// readDirBlock reads one directory record. A clean EOF at the record
// boundary (no bytes read at all) is reported via ok=false with a nil
// error; any other short read is ErrTruncated.
func readDirBlock(r *ByteReader) (blk DirBlock, ok bool, err error) {
	head, clean, err := r.TryReadExact(16)
	if err != nil {
		return DirBlock{}, false, err
	}
	if clean {
		return DirBlock{}, false, nil
	}

	seconds := int64(binary.BigEndian.Uint64(head[0:8]))
	nanos := int32(binary.BigEndian.Uint32(head[8:12]))
	// head[12:16] is padding, discarded

	mtime, err := mtimeFromUnix(seconds, nanos)
	if err != nil {
		return DirBlock{}, false, err
	}

	path, err := r.ReadCString()
	if err != nil {
		return DirBlock{}, false, err
	}

	entries, err := readEntries(r)
	if err != nil {
		return DirBlock{}, false, err
	}

	return DirBlock{
		Path:    path,
		MTime:   mtime,
		Entries: entries,
	}, true, nil
}

// mtimeFromUnix builds a timestamp per spec.md §4.2:
// mtime = from_unix(seconds) + round(nanos / 1000) microseconds. A negative
// nanos field is undefined on-disk and rejected as a format error (spec.md
// §9 open question (b)), rather than silently fed to time.Unix.
func mtimeFromUnix(seconds int64, nanos int32) (time.Time, error) {
	if nanos < 0 {
		return time.Time{}, errors.Wrapf(ErrTruncated, "negative nanos field %d", nanos)
	}
	micros := (int64(nanos) + 500) / 1000
	return time.Unix(seconds, 0).Add(time.Duration(micros) * time.Microsecond), nil
}

func readEntries(r *ByteReader) ([]Entry, error) {
	var entries []Entry
	for {
		tag, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		if tag == 2 {
			return entries, nil
		}
		name, err := r.ReadCString()
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{IsSubdir: tag == 1, Name: name})
	}
}

// MatchPath reports whether this block's own path matches any of the given
// patterns.
func (d DirBlock) MatchPath(selectors []*regexp.Regexp) bool {
	for _, s := range selectors {
		if s.Match(d.Path) {
			return true
		}
	}
	return false
}

// MatchEntries filters the block's entries against selectors, stopping
// early once limit matches have been found (limit <= 0 means unlimited).
// The result is also recorded on d.Selection for callers that decoded the
// block by value and want to retain it alongside the match.
func (d *DirBlock) MatchEntries(selectors []*regexp.Regexp, limit int) []Entry {
	var matched []Entry
	for _, e := range d.Entries {
		for _, s := range selectors {
			if s.Match(e.Name) {
				matched = append(matched, e)
				break
			}
		}
		if limit > 0 && len(matched) >= limit {
			break
		}
	}
	d.Selection = matched
	return matched
}
