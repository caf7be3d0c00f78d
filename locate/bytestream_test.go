package locate

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadExact(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte("ABCD")))
	got, err := r.ReadExact(4)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(got, []byte("ABCD")) {
		t.Errorf("expected %q, got %q", "ABCD", got)
	}
}

func TestReadExactTruncated(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte("AB")))
	_, err := r.ReadExact(4)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestReadCString(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte("hello\x00world\x00")))
	got, err := r.ReadCString()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(got) != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
	got, err = r.ReadCString()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(got) != "world" {
		t.Errorf("expected %q, got %q", "world", got)
	}
}

func TestReadCStringTruncated(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte("no terminator")))
	_, err := r.ReadCString()
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestReadInt32BE(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte{0x00, 0x00, 0x01, 0x00}))
	got, err := r.ReadInt32BE()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != 256 {
		t.Errorf("expected 256, got %d", got)
	}
}

func TestTryReadExactCleanEOF(t *testing.T) {
	r := NewByteReader(bytes.NewReader(nil))
	_, clean, err := r.TryReadExact(16)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !clean {
		t.Error("expected clean EOF at record boundary")
	}
}

func TestTryReadExactMidRecord(t *testing.T) {
	r := NewByteReader(bytes.NewReader([]byte{1, 2, 3}))
	_, clean, err := r.TryReadExact(16)
	if clean {
		t.Error("expected a non-clean (truncated) read")
	}
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}
