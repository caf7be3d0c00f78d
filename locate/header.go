package locate

import (
	"bytes"

	"github.com/pkg/errors"
)

// magic precedes every mlocate database header.
var magic = []byte("\x00mlocate")

// Header is the fixed-size prefix of an mlocate database, see spec §3/§6.
type Header struct {
	ConfBlockSize int32
	FileFormat    uint8
	ReqVisibility uint8
	Root          []byte
}

// readHeader validates the magic and parses the fixed header fields plus
// the null-terminated root path. The two bytes of padding following
// ReqVisibility are read and discarded (open question (a) in spec §9:
// the format is assumed to always align the root path at offset 16,
// independent of the padding's value).
func readHeader(r *ByteReader) (Header, error) {
	var h Header

	got, err := r.ReadExact(len(magic))
	if err != nil {
		return h, errors.Wrap(err, "reading magic")
	}
	if !bytes.Equal(got, magic) {
		return h, errors.Wrapf(ErrBadMagic, "got %q", got)
	}

	confBlockSize, err := r.ReadInt32BE()
	if err != nil {
		return h, errors.Wrap(err, "reading conf_block_size")
	}
	h.ConfBlockSize = confBlockSize

	fileFormat, err := r.ReadUint8()
	if err != nil {
		return h, errors.Wrap(err, "reading file_format")
	}
	h.FileFormat = fileFormat

	reqVisibility, err := r.ReadUint8()
	if err != nil {
		return h, errors.Wrap(err, "reading req_visibility")
	}
	h.ReqVisibility = reqVisibility

	if _, err := r.ReadExact(2); err != nil { // padding, discarded
		return h, errors.Wrap(err, "reading header padding")
	}

	root, err := r.ReadCString()
	if err != nil {
		return h, errors.Wrap(err, "reading root path")
	}
	h.Root = root

	return h, nil
}
