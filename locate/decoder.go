package locate

import (
	"os"

	"github.com/pkg/errors"
)

// State tracks a Decoder's position in the mlocate database grammar:
// Initial -> HeaderRead -> ConfRead -> Streaming -> Exhausted. Only
// Streaming loops on itself; every other transition happens exactly once.
type State int

const (
	StateInitial State = iota
	StateHeaderRead
	StateConfRead
	StateStreaming
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateHeaderRead:
		return "header-read"
	case StateConfRead:
		return "conf-read"
	case StateStreaming:
		return "streaming"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Decoder parses an mlocate database: the fixed header, the configuration
// block, and a lazy depth-first stream of directory blocks. It is a pull
// iterator rather than the channel/goroutine pipelines used elsewhere in
// this codebase — the source is one sequential file and no concurrency is
// wanted here.
type Decoder struct {
	file   *os.File
	reader *ByteReader
	state  State

	Header Header
	Conf   Config
}

// Open validates the magic, eagerly parses the header and configuration
// block, and positions the cursor at the first directory block.
func Open(path string) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapIO(err, "opening database")
	}

	d := &Decoder{file: f, reader: NewByteReader(f), state: StateInitial}

	header, err := readHeader(d.reader)
	if err != nil {
		f.Close()
		return nil, err
	}
	d.Header = header
	d.state = StateHeaderRead

	conf, err := readConfig(d.reader, header.ConfBlockSize)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "reading configuration block")
	}
	d.Conf = conf
	d.state = StateConfRead

	return d, nil
}

// State reports the decoder's current position in the grammar.
func (d *Decoder) State() State {
	return d.state
}

// Next returns the next directory block. ok is false once the stream ends
// cleanly at a directory-header boundary, at which point the decoder
// transitions to StateExhausted and every subsequent call returns
// (DirBlock{}, false, nil).
func (d *Decoder) Next() (DirBlock, bool, error) {
	if d.state == StateExhausted {
		return DirBlock{}, false, nil
	}

	blk, ok, err := readDirBlock(d.reader)
	if err != nil {
		return DirBlock{}, false, err
	}
	if !ok {
		d.state = StateExhausted
		return DirBlock{}, false, nil
	}

	d.state = StateStreaming
	return blk, true, nil
}

// Close releases the underlying file handle. Safe to call more than once.
func (d *Decoder) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
