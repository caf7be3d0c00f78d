package locate

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// CompilePatterns compiles pattern strings into byte-oriented matchers.
// When useRegex is false, each pattern is first translated from a shell
// glob to an anchored regex (globToRegex); ignoreCase prepends the
// case-insensitive flag to every compiled expression.
func CompilePatterns(patterns []string, useRegex, ignoreCase bool) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		expr := p
		if !useRegex {
			expr = globToRegex(p)
		} else {
			// Anchor at the start only, matching Python's re.match semantics
			// (spec.md §4.3), not a full-string match like globToRegex's
			// trailing '$'. The non-capturing group keeps '^' from binding
			// to just the first alternative of a top-level '|'.
			expr = "^(?:" + expr + ")"
		}
		if ignoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.Wrapf(ErrPatternSyntax, "pattern %q: %s", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// globToRegex translates a shell glob into an anchored regular expression:
// '*' becomes '.*', '?' becomes '.', bracket expressions pass through
// verbatim, and every other character is escaped. This mirrors the shape
// of Python's fnmatch.translate as used against raw path bytes.
func globToRegex(pattern string) string {
	var b strings.Builder
	b.WriteByte('^')

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				b.WriteString(regexp.QuoteMeta(string(c)))
				continue
			}
			seg := string(runes[i : j+1])
			if strings.HasPrefix(seg, "[!") {
				seg = "[^" + seg[2:]
			}
			b.WriteString(seg)
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteByte('$')

	return b.String()
}
