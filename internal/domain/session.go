package domain

// SessionState represents where a user is in the quiz flow
type SessionState string

const (
	StateIdle              SessionState = "idle"
	StateAwaitingSetChoice SessionState = "awaiting_set_choice"
	StateInProgress        SessionState = "in_progress"
)

// Session is the per-user quiz progress record. It lives in process
// memory only; a restart drops all sessions.
type Session struct {
	UserID       int64
	State        SessionState
	QuizName     string
	Questions    []Question
	Position     int
	CorrectCount int
}

// Reset clears any active quiz and returns the session to idle.
func (s *Session) Reset() {
	s.State = StateIdle
	s.QuizName = ""
	s.Questions = nil
	s.Position = 0
	s.CorrectCount = 0
}
