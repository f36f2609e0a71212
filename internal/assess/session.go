package assess

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/learnflow/learnflow/internal/catalog"
)

// Session state machine: NotStarted -> InProgress -> Completed. Completed is
// terminal; retaking a test means a fresh session with a new attempt ID.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	ErrNotInProgress = errors.New("attempt not in progress")
	ErrUnanswered    = errors.New("all questions must be answered before submitting")
	ErrBadQuestion   = errors.New("question index out of range")
	ErrBadOption     = errors.New("option index out of range")
)

// Session is one test-taking attempt with its countdown. The timer is armed
// on Start and stopped on every exit path (submit, timeout, abandon).
type Session struct {
	mu sync.Mutex

	ID     string
	Test   catalog.AssessmentTest
	UserID string

	state     State
	answers   []int
	startedAt time.Time
	deadline  time.Time
	timer     *time.Timer
	attempt   *Attempt

	now        func() time.Time
	onComplete func(Attempt)
}

// NewSession builds a NotStarted session. now is injectable for tests;
// onComplete (optional) fires once on entry to Completed, including forced
// timer submits.
func NewSession(t catalog.AssessmentTest, userID string, now func() time.Time, onComplete func(Attempt)) *Session {
	answers := make([]int, len(t.Questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	return &Session{
		ID:         uuid.NewString(),
		Test:       t,
		UserID:     userID,
		state:      StateNotStarted,
		answers:    answers,
		now:        now,
		onComplete: onComplete,
	}
}

// Start arms the countdown and moves to InProgress.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateNotStarted {
		return errors.New("attempt already started")
	}
	limit := time.Duration(s.Test.TimeLimitMin) * time.Minute
	s.startedAt = s.now()
	s.deadline = s.startedAt.Add(limit)
	s.state = StateInProgress
	s.timer = time.AfterFunc(limit, s.expire)
	return nil
}

// Answer records a choice for one question. Answering or navigating does not
// change state, only the in-progress answer array.
func (s *Session) Answer(question, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if question < 0 || question >= len(s.answers) {
		return ErrBadQuestion
	}
	if option < Unanswered || option >= len(s.Test.Questions[question].Options) {
		return ErrBadOption
	}
	s.answers[question] = option
	return nil
}

// Submit grades and completes the attempt. Only allowed once every question
// has an answer; the timer path bypasses that check.
func (s *Session) Submit() (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return Attempt{}, ErrNotInProgress
	}
	for _, a := range s.answers {
		if a == Unanswered {
			return Attempt{}, ErrUnanswered
		}
	}
	return s.completeLocked(), nil
}

// Abandon tears the session down without producing an attempt. The countdown
// is cancelled so no orphaned timer can mutate state afterwards.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return
	}
	s.stopTimerLocked()
	s.state = StateCompleted
}

// expire is the timer callback: forced submission of whatever answers are
// recorded. Not an error; it produces a valid, possibly low-scoring attempt.
func (s *Session) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return
	}
	s.completeLocked()
}

func (s *Session) completeLocked() Attempt {
	s.stopTimerLocked()

	score, passed := Grade(s.Test, s.answers)
	remaining := s.remainingLocked()
	limit := s.Test.TimeLimitMin * 60

	answers := make([]int, len(s.answers))
	copy(answers, s.answers)
	a := Attempt{
		ID:          s.ID,
		TestID:      s.Test.ID,
		UserID:      s.UserID,
		Answers:     answers,
		Score:       score,
		Passed:      passed,
		CompletedAt: s.now(),
		TimeSpent:   limit - remaining,
	}
	s.attempt = &a
	s.state = StateCompleted
	if s.onComplete != nil {
		s.onComplete(a)
	}
	return a
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// TimeRemaining reports whole seconds left on the countdown, never negative.
func (s *Session) TimeRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remainingLocked()
}

func (s *Session) remainingLocked() int {
	if s.state == StateNotStarted {
		return s.Test.TimeLimitMin * 60
	}
	rem := int(s.deadline.Sub(s.now()).Seconds())
	if rem < 0 {
		return 0
	}
	return rem
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Answers returns a copy of the current answer array.
func (s *Session) Answers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Result returns the final attempt once Completed.
func (s *Session) Result() (Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt == nil {
		return Attempt{}, false
	}
	return *s.attempt, true
}
