package assess

import (
	"errors"
	"sync"
	"time"

	"github.com/learnflow/learnflow/internal/catalog"
)

// Manager tracks live test-taking sessions by attempt ID. Submitted and
// abandoned sessions stay retrievable until Remove.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	now        func() time.Time
	onComplete func(Attempt)
}

func NewManager(now func() time.Time, onComplete func(Attempt)) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		sessions:   map[string]*Session{},
		now:        now,
		onComplete: onComplete,
	}
}

// Start creates a session for the test and arms its countdown.
func (m *Manager) Start(t catalog.AssessmentTest, userID string) (*Session, error) {
	if len(t.Questions) == 0 {
		return nil, errors.New("test has no questions")
	}
	s := NewSession(t, userID, m.now, m.onComplete)
	if err := s.Start(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) Get(attemptID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[attemptID]
	return s, ok
}

// Abandon cancels a session's countdown and drops it from the manager.
func (m *Manager) Abandon(attemptID string) bool {
	m.mu.Lock()
	s, ok := m.sessions[attemptID]
	if ok {
		delete(m.sessions, attemptID)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	s.Abandon()
	return true
}
