package domain

import "strings"

// AlternativesDelimiter separates multiple accepted variants inside a
// word or translation field, e.g. "No;Not at all".
const AlternativesDelimiter = ";"

// WordPair is a word-translation pair. Either side may hold several
// delimiter-separated variants.
type WordPair struct {
	Word        string `toml:"word"`
	Translation string `toml:"translation"`
}

// VocabularySet is a named question pool, loaded once at startup and
// never mutated afterwards.
type VocabularySet struct {
	Name  string
	Pairs []WordPair
}

// Direction says which side of a pair is shown as the prompt.
type Direction string

const (
	WordToTranslation Direction = "word_to_translation"
	TranslationToWord Direction = "translation_to_word"
)

// Question is one quiz question derived from a pair for a single session.
// Prompt is one concrete variant of the prompt side; Answer keeps the
// other side whole, delimiter included, for multi-answer comparison.
type Question struct {
	Direction Direction
	Prompt    string
	Answer    string
}

// Alternatives splits a field into its accepted variants. A field
// without the delimiter yields itself as the only variant.
func Alternatives(s string) []string {
	if !strings.Contains(s, AlternativesDelimiter) {
		return []string{s}
	}
	return strings.Split(s, AlternativesDelimiter)
}
