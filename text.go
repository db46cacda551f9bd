package coursegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CollapseSpace replaces every run of whitespace in s with a single space.
// Leading and trailing runs are collapsed too, not removed.
func CollapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// upperFirst upper-cases the first rune of s and leaves the rest alone.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
