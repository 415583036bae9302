package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// slugify lower-cases name, strips accents and joins the remaining
// alphanumeric words with dashes: "The Forest Hiker" -> "the-forest-hiker".
func slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	dash := false
	for _, r := range norm.NFKD.String(name) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
		default:
			dash = true
		}
	}

	return b.String()
}
