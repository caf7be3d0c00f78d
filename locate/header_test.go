package locate

import (
	"bytes"
	"errors"
	"testing"
)

func validHeaderBytes(root string) []byte {
	var buf bytes.Buffer
	buf.Write(magic)
	buf.Write([]byte{0, 0, 0, 0})    // conf_block_size = 0
	buf.WriteByte(0)                 // file_format
	buf.WriteByte(0)                 // req_visibility
	buf.Write([]byte{0, 0})          // padding
	buf.WriteString(root)
	buf.WriteByte(0)
	return buf.Bytes()
}

func TestReadHeaderValid(t *testing.T) {
	r := NewByteReader(bytes.NewReader(validHeaderBytes("/")))
	h, err := readHeader(r)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(h.Root) != "/" {
		t.Errorf("expected root %q, got %q", "/", h.Root)
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte("not-a-db")))
	_, err := readHeader(r)
	if !errors.Is(err, ErrBadMagic) {
		t.Errorf("expected ErrBadMagic, got %v", err)
	}
}

func TestReadHeaderTruncated(t *testing.T) {
	r := NewByteReader(bytes.NewReader(magic))
	_, err := readHeader(r)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}
