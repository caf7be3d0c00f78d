package locate

import (
	"github.com/pkg/errors"
)

// Sentinel error kinds. These three, and the I/O errors wrapped by wrapIO,
// are fatal to the current query; the CLI driver maps them to distinct
// process exit codes.
var (
	// ErrBadMagic is returned when a database does not start with "\0mlocate"
	ErrBadMagic = errors.New(`file does not start with mlocate magic bytes`)
	// ErrTruncated is returned when the stream ends mid-record
	ErrTruncated = errors.New(`truncated input: stream ended before a complete record was read`)
	// ErrPatternSyntax is returned when a glob or regex pattern fails to compile
	ErrPatternSyntax = errors.New(`invalid pattern syntax`)
)

// wrapIO annotates an I/O error with the operation that triggered it.
// Errors produced this way satisfy errors.Is/errors.As against the
// original *os.PathError or similar, per github.com/pkg/errors semantics.
func wrapIO(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, context)
}
