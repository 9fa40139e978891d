package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		response string
		correct  bool
	}{
		{
			name:     "exact match",
			expected: "hello",
			response: "hello",
			correct:  true,
		},
		{
			name:     "case difference",
			expected: "Hello",
			response: "hello",
			correct:  true,
		},
		{
			name:     "punctuation ignored",
			expected: "Hello!",
			response: "hello",
			correct:  true,
		},
		{
			name:     "apostrophe ignored",
			expected: "don't",
			response: "dont",
			correct:  true,
		},
		{
			name:     "surrounding whitespace ignored",
			expected: "hello",
			response: "  hello  ",
			correct:  true,
		},
		{
			name:     "full case folding",
			expected: "Straße",
			response: "STRASSE",
			correct:  true,
		},
		{
			name:     "first alternative",
			expected: "No;Not at all",
			response: "no",
			correct:  true,
		},
		{
			name:     "second alternative",
			expected: "No;Not at all",
			response: "Not at all",
			correct:  true,
		},
		{
			name:     "no matching alternative",
			expected: "No;Not at all",
			response: "maybe",
			correct:  false,
		},
		{
			name:     "different word",
			expected: "hello",
			response: "goodbye",
			correct:  false,
		},
		{
			name:     "near miss is not fuzzy matched",
			expected: "hello",
			response: "helo",
			correct:  false,
		},
		{
			name:     "empty response",
			expected: "hello",
			response: "",
			correct:  false,
		},
		{
			name:     "japanese response",
			expected: "おはよう",
			response: "おはよう",
			correct:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.correct, IsCorrect(tt.expected, tt.response))
		})
	}
}
