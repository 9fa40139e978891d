package quiz

import (
	"errors"
	"fmt"
	"math/rand"

	"vocaquiz/internal/domain"
)

// ErrInsufficientItems is returned when a set holds fewer pairs than
// the requested question count. Startup validation should make this
// unreachable at quiz time.
var ErrInsufficientItems = errors.New("not enough vocabulary items")

// SelectQuestions draws n questions from the set without replacement.
// Each question gets an independently random direction, and when the
// prompt side holds several variants one is picked at random. The
// answer side is kept whole for multi-answer comparison.
func SelectQuestions(set *domain.VocabularySet, n int, rng *rand.Rand) ([]domain.Question, error) {
	if n < 1 {
		return nil, fmt.Errorf("question count must be at least 1, got %d", n)
	}
	if n > len(set.Pairs) {
		return nil, fmt.Errorf("%w: set %q has %d, need %d",
			ErrInsufficientItems, set.Name, len(set.Pairs), n)
	}

	questions := make([]domain.Question, 0, n)
	for _, i := range rng.Perm(len(set.Pairs))[:n] {
		pair := set.Pairs[i]

		direction := domain.WordToTranslation
		if rng.Intn(2) == 1 {
			direction = domain.TranslationToWord
		}

		promptSide, answerSide := pair.Word, pair.Translation
		if direction == domain.TranslationToWord {
			promptSide, answerSide = pair.Translation, pair.Word
		}

		variants := domain.Alternatives(promptSide)
		prompt := variants[rng.Intn(len(variants))]

		questions = append(questions, domain.Question{
			Direction: direction,
			Prompt:    prompt,
			Answer:    answerSide,
		})
	}

	return questions, nil
}
