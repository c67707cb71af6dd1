// Package nameformat turns a JavaScript variable name into a case-insensitive
// path-fragment pattern used to search the filesystem for the module that
// defines it.
package nameformat

import (
	"strings"
	"unicode"
)

// boundary is a placeholder inserted at every camel/pascal/snake/dash word
// break, later expanded into the regex fragment that tolerates an optional
// plural suffix and a single separator character.
const boundary = "\x00"

// pluralGap is the regex fragment a boundary expands to: an optional "es"
// or "s" plural suffix, followed by any single separator character (a
// path slash, dash, underscore, or nothing at all).
const pluralGap = `(es|s)?.?`

// FormattedToRegex converts name into a lowercase regex pattern matching
// the file or folder names a module defining name is likely to live under.
//
// "mockUser" becomes "mock(es|s)?.?user", which matches mock_user,
// mocks/user, mockuser and mockUser alike. The trailing (es|s)? is
// intentionally permissive — over-matching plural folder names is an
// accepted risk, not a bug.
func FormattedToRegex(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if r == '-' || r == '_' {
			b.WriteString(boundary)
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteString(boundary)
			}
		}
		b.WriteRune(r)
	}
	lowered := strings.ToLower(b.String())
	return strings.ReplaceAll(lowered, boundary, pluralGap)
}
