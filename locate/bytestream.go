package locate

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ByteReader reads null-terminated byte strings and fixed-width big-endian
// integers from a sequential byte source. It never decodes bytes to text —
// filenames recorded in a locate database may carry any encoding, or none,
// and premature decoding would either lose information or fail fatally.
// Decoding is the sole responsibility of SafeDecode, applied only at
// output boundaries.
type ByteReader struct {
	r io.Reader
}

// NewByteReader wraps r for sequential reading.
func NewByteReader(r io.Reader) *ByteReader {
	return &ByteReader{r: r}
}

// ReadExact reads exactly n bytes or returns ErrTruncated if the source
// runs out first.
func (b *ByteReader) ReadExact(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	_, err := io.ReadFull(b.r, buf)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return nil, errors.Wrap(ErrTruncated, "reading fixed-size field")
	}
	if err != nil {
		return nil, wrapIO(err, "reading fixed-size field")
	}
	return buf, nil
}

// ReadCString consumes bytes up to and excluding the first NUL byte. It
// fails with ErrTruncated if the stream ends before a terminator is seen.
func (b *ByteReader) ReadCString() ([]byte, error) {
	var buf []byte
	var one [1]byte
	for {
		_, err := io.ReadFull(b.r, one[:])
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, errors.Wrap(ErrTruncated, "reading null-terminated string")
		}
		if err != nil {
			return nil, wrapIO(err, "reading null-terminated string")
		}
		if one[0] == 0 {
			return buf, nil
		}
		buf = append(buf, one[0])
	}
}

// ReadInt32BE reads a signed 32-bit big-endian integer.
func (b *ByteReader) ReadInt32BE() (int32, error) {
	buf, err := b.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf)), nil
}

// ReadInt64BE reads a signed 64-bit big-endian integer.
func (b *ByteReader) ReadInt64BE() (int64, error) {
	buf, err := b.ReadExact(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf)), nil
}

// ReadUint8 reads a single unsigned byte.
func (b *ByteReader) ReadUint8() (uint8, error) {
	buf, err := b.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// TryReadExact behaves like ReadExact but reports whether the read was
// "clean" — i.e. zero bytes were available before EOF — rather than
// failing. The decoder's directory stream uses this at record boundaries:
// a clean EOF at a directory-header boundary ends the stream normally,
// while a short read strictly inside a record is TruncatedInput.
func (b *ByteReader) TryReadExact(n int) (data []byte, clean bool, err error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(b.r, buf)
	if err == io.EOF && read == 0 {
		return nil, true, nil
	}
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return nil, false, errors.Wrap(ErrTruncated, "reading record header")
	}
	if err != nil {
		return nil, false, wrapIO(err, "reading record header")
	}
	return buf, false, nil
}
