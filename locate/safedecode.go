package locate

import (
	"fmt"
	"unicode/utf8"
)

// Observer receives diagnostics emitted while decoding. The CLI wires this
// to a github.com/sirupsen/logrus.Logger; tests can supply a slice-backed
// stub. Modeled as a one-method interface rather than a direct logrus
// dependency so locate stays decoupled from any particular sink.
type Observer interface {
	Warnf(format string, args ...interface{})
}

// NopObserver discards every diagnostic.
type NopObserver struct{}

// Warnf implements Observer by doing nothing.
func (NopObserver) Warnf(format string, args ...interface{}) {}

// SafeDecode converts raw bytes to printable text. Valid UTF-8 decodes
// directly; anything else is re-rendered with every invalid byte escaped
// as \xHH, and two warnings are emitted to sink: one naming the raw bytes,
// one naming the fully escaped text qualified by contextPrefix. SafeDecode
// never fails — it is the only place in this package bytes become text.
func SafeDecode(b []byte, contextPrefix string, sink Observer) string {
	if utf8.Valid(b) {
		return string(b)
	}
	if sink == nil {
		sink = NopObserver{}
	}

	sink.Warnf("invalid encoding in %q", b)
	escaped := escapeInvalidUTF8(b)
	sink.Warnf("entry parsed as %q", contextPrefix+escaped)
	return escaped
}

// escapeInvalidUTF8 walks b rune-by-rune, passing through every valid rune
// verbatim and rendering each invalid byte as \xHH, mirroring Python's
// errors='backslashreplace' codec (Go's unicode/utf8 has no direct
// transcoder equivalent).
func escapeInvalidUTF8(b []byte) string {
	var out []byte
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, []byte(fmt.Sprintf(`\x%02x`, b[i]))...)
			i++
			continue
		}
		out = append(out, b[i:i+size]...)
		i += size
	}
	return string(out)
}
