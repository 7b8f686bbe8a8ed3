package schema

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first character of s and leaves the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
