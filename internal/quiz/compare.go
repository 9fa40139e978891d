package quiz

import (
	"strings"
	"unicode"

	"vocaquiz/internal/domain"

	"golang.org/x/text/cases"
)

// IsCorrect reports whether the response matches the expected answer.
// An expected answer with delimiter-separated alternatives matches if
// the response equals any one of them after normalization.
func IsCorrect(expected, response string) bool {
	normalized := normalize(response)
	for _, alt := range domain.Alternatives(expected) {
		if normalize(alt) == normalized {
			return true
		}
	}
	return false
}

// normalize trims surrounding whitespace, strips punctuation, and
// applies full Unicode case folding. Full folding is needed so that
// e.g. "Straße" and "STRASSE" compare equal; simple folding does not
// cover such expansions.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)
	return cases.Fold().String(s)
}
