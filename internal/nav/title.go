package nav

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StripOrderPrefix removes a leading two-digit ordering prefix ("01_") from a
// single path segment. Segments that do not match the pattern are returned
// unchanged, which makes the strip idempotent.
func StripOrderPrefix(stem string) string {
	if len(stem) >= 3 && isDigit(stem[0]) && isDigit(stem[1]) && stem[2] == '_' {
		return stem[3:]
	}
	return stem
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// FormatTitle turns a filename stem into a display title: hyphens and
// underscores become spaces, each word is title-cased, words are rejoined with
// single spaces. Idempotent on already-formatted input.
func FormatTitle(stem string) string {
	caser := cases.Title(language.Und)
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(stem))
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
