package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/learnflow/learnflow/internal/assess"
	auth "github.com/learnflow/learnflow/internal/auth/middleware"
	"github.com/learnflow/learnflow/internal/catalog"
	"github.com/learnflow/learnflow/internal/session"
)

type attemptView struct {
	ID            string `json:"id"`
	TestID        string `json:"test_id"`
	State         string `json:"state"`
	Answers       []int  `json:"answers"`
	TimeRemaining int    `json:"time_remaining"`
}

func viewOfSession(s *assess.Session) attemptView {
	return attemptView{
		ID:            s.ID,
		TestID:        s.Test.ID,
		State:         s.State().String(),
		Answers:       s.Answers(),
		TimeRemaining: s.TimeRemaining(),
	}
}

// StartAttemptHandler begins a fresh NotStarted -> InProgress cycle for a
// test and arms its countdown.
func StartAttemptHandler(cat *catalog.Catalog, mgr *assess.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TestID string `json:"test_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		t, ok := cat.TestByID(req.TestID)
		if !ok {
			http.Error(w, "test not found", 404)
			return
		}
		s, err := mgr.Start(t, auth.SubjectFromContext(r.Context()))
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		_ = json.NewEncoder(w).Encode(viewOfSession(s))
	}
}

func SaveAnswerHandler(mgr *assess.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		var req struct {
			Question int `json:"question"`
			Option   int `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		s, ok := mgr.Get(id)
		if !ok {
			http.Error(w, "attempt not found", 404)
			return
		}
		if err := s.Answer(req.Question, req.Option); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		_ = json.NewEncoder(w).Encode(viewOfSession(s))
	}
}

// SubmitAttemptHandler grades the attempt and reports the resulting unlock
// delta for the test's path, fed by the caller's current passed-test set.
func SubmitAttemptHandler(mgr *assess.Manager, ctrl *session.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		var req struct {
			PassedTests []string `json:"passed_tests"`
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req) // optional body
		}
		s, ok := mgr.Get(id)
		if !ok {
			http.Error(w, "attempt not found", 404)
			return
		}
		a, err := s.Submit()
		if err != nil {
			if errors.Is(err, assess.ErrNotInProgress) {
				// Timer may have force-submitted already; return that result.
				if done, ok := s.Result(); ok {
					a = done
				} else {
					http.Error(w, err.Error(), 409)
					return
				}
			} else {
				http.Error(w, err.Error(), 400)
				return
			}
		}
		passed, newly, _ := ctrl.RecordTestAttempt(req.PassedTests, s.Test, a)
		_ = json.NewEncoder(w).Encode(struct {
			Attempt       assess.Attempt `json:"attempt"`
			PassedTests   []string       `json:"passed_tests"`
			NewlyUnlocked []string       `json:"newly_unlocked"`
		}{a, passed, newly})
	}
}

func GetAttemptHandler(mgr *assess.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		s, ok := mgr.Get(id)
		if !ok {
			http.Error(w, "attempt not found", 404)
			return
		}
		if a, ok := s.Result(); ok {
			_ = json.NewEncoder(w).Encode(a)
			return
		}
		_ = json.NewEncoder(w).Encode(viewOfSession(s))
	}
}

// AbandonAttemptHandler cancels the countdown and discards the session.
func AbandonAttemptHandler(mgr *assess.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		if !mgr.Abandon(id) {
			http.Error(w, "attempt not found", 404)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
