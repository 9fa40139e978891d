package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/vocab"
)

// Reply is one outbound message. When Options is non-empty the
// transport should offer them as a single-choice keyboard.
type Reply struct {
	Text    string
	Options []string
}

// Engine is the quiz session state machine. It is transport-free: the
// handler feeds it inbound events and delivers the replies it returns.
//
// Sessions are keyed by user identity. A map-level mutex guards the
// session map and each session carries its own mutex, so events for
// one user are processed in order while distinct users run in
// parallel.
type Engine struct {
	store        vocab.Store
	numQuestions int
	greet        func() string

	randMu sync.Mutex
	rng    *rand.Rand

	mu       sync.Mutex
	sessions map[int64]*session
}

type session struct {
	mu sync.Mutex
	domain.Session
}

// NewEngine creates an engine over the given store. greet supplies the
// /start greeting; the engine never computes the time itself.
func NewEngine(store vocab.Store, numQuestions int, greet func() string) *Engine {
	return &Engine{
		store:        store,
		numQuestions: numQuestions,
		greet:        greet,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions:     make(map[int64]*session),
	}
}

// HandleStart handles the /start command: greet, then either start the
// only configured quiz right away or offer the set choice.
func (e *Engine) HandleStart(userID int64) ([]Reply, error) {
	s := e.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	// Perhaps the user has asked to start over mid-quiz
	s.Reset()

	replies := []Reply{{Text: e.greet()}}

	names := e.store.Names()
	if len(names) == 1 {
		more, err := e.beginQuiz(s, names[0])
		if err != nil {
			return nil, err
		}
		return append(replies, more...), nil
	}

	s.State = domain.StateAwaitingSetChoice
	return append(replies, e.setChoiceReply()), nil
}

// HandleText handles any non-command text. With no active quiz the
// text is interpreted as a set-name choice; mid-quiz it is an answer
// to the current question.
func (e *Engine) HandleText(userID int64, text string) ([]Reply, error) {
	s := e.session(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != domain.StateInProgress {
		return e.chooseSet(s, text)
	}

	// A session claiming to be in progress without a usable question
	// batch falls back to set selection instead of crashing.
	if s.Position >= len(s.Questions) {
		s.Reset()
		return e.chooseSet(s, text)
	}

	return e.checkAnswer(s, text), nil
}

// session returns the user's session, creating an idle one on first contact.
func (e *Engine) session(userID int64) *session {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[userID]
	if !ok {
		s = &session{Session: domain.Session{UserID: userID, State: domain.StateIdle}}
		e.sessions[userID] = s
	}
	return s
}

// chooseSet treats text as a set-name choice. An unrecognized name gets
// an explicit rejection and a fresh choice prompt.
func (e *Engine) chooseSet(s *session, text string) ([]Reply, error) {
	replies, err := e.beginQuiz(s, strings.TrimSpace(text))
	if errors.Is(err, vocab.ErrUnknownSet) {
		s.State = domain.StateAwaitingSetChoice
		return []Reply{
			{Text: fmt.Sprintf("%q is not one of the available quizzes.", text)},
			e.setChoiceReply(),
		}, nil
	}
	return replies, err
}

// beginQuiz starts a quiz over the named set and asks the first question.
func (e *Engine) beginQuiz(s *session, setName string) ([]Reply, error) {
	set, err := e.store.Get(setName)
	if err != nil {
		return nil, err
	}

	questions, err := e.selectQuestions(set)
	if err != nil {
		return nil, err
	}

	s.State = domain.StateInProgress
	s.QuizName = setName
	s.Questions = questions
	s.Position = 0
	s.CorrectCount = 0

	return []Reply{
		{Text: fmt.Sprintf("I will now ask you %d questions.", len(questions))},
		{Text: questions[0].Prompt},
	}, nil
}

// checkAnswer scores the response against the current question and
// advances the session, finishing the quiz after the last question.
func (e *Engine) checkAnswer(s *session, text string) []Reply {
	question := s.Questions[s.Position]

	var replies []Reply
	if IsCorrect(question.Answer, text) {
		s.CorrectCount++
		replies = append(replies, Reply{Text: "Correct!"})
		if strings.Contains(question.Answer, domain.AlternativesDelimiter) {
			replies = append(replies, Reply{Text: "Do not forget that there are alternative answers!"})
		}
	} else {
		replies = append(replies, Reply{Text: fmt.Sprintf("The correct answer was %q.", question.Answer)})
	}

	s.Position++
	if s.Position == len(s.Questions) {
		replies = append(replies,
			Reply{Text: fmt.Sprintf("You scored %d out of %d.", s.CorrectCount, len(s.Questions))},
			Reply{Text: "To try again, just /start."},
		)
		s.Reset()
		return replies
	}

	return append(replies, Reply{Text: s.Questions[s.Position].Prompt})
}

func (e *Engine) setChoiceReply() Reply {
	return Reply{
		Text:    "Choose the questions that you want to be tested on.",
		Options: e.store.Names(),
	}
}

// selectQuestions draws a batch under the rng lock; rand.Rand is not
// safe for concurrent use across sessions.
func (e *Engine) selectQuestions(set *domain.VocabularySet) ([]domain.Question, error) {
	e.randMu.Lock()
	defer e.randMu.Unlock()
	return SelectQuestions(set, e.numQuestions, e.rng)
}
