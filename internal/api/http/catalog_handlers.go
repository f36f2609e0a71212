package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/learnflow/learnflow/internal/catalog"
	"github.com/learnflow/learnflow/internal/session"
	"github.com/learnflow/learnflow/internal/unlock"
)

// questionView hides the answer key and explanation from learners taking a
// test; both come back with the graded attempt.
type questionView struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty,omitempty"`
}

type testView struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	PathID          string         `json:"path_id"`
	PrerequisiteFor []string       `json:"prerequisite_for"`
	PassingScore    int            `json:"passing_score"`
	TimeLimitMin    int            `json:"time_limit_min"`
	Questions       []questionView `json:"questions"`
}

func sanitizeTest(t catalog.AssessmentTest) testView {
	qs := make([]questionView, len(t.Questions))
	for i, q := range t.Questions {
		qs[i] = questionView{ID: q.ID, Prompt: q.Prompt, Options: q.Options, Difficulty: q.Difficulty}
	}
	return testView{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		PathID:          t.PathID,
		PrerequisiteFor: t.PrerequisiteFor,
		PassingScore:    t.PassingScore,
		TimeLimitMin:    t.TimeLimitMin,
		Questions:       qs,
	}
}

func ListPathsHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(cat.Paths)
	}
}

func GetPathHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "pathID")
		p, ok := cat.PathByID(id)
		if !ok {
			http.Error(w, "path not found", 404)
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

func ListPathTestsHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "pathID")
		if _, ok := cat.PathByID(id); !ok {
			http.Error(w, "path not found", 404)
			return
		}
		tests := cat.TestsForPath(id)
		out := make([]testView, 0, len(tests))
		for _, t := range tests {
			out = append(out, sanitizeTest(t))
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// ComputeUnlockedHandler derives the unlock set for a path from the caller's
// completion and passed-test state. POST with state in the body keeps the
// engine stateless about enrollment, which the caller owns.
func ComputeUnlockedHandler(cat *catalog.Catalog, ctrl *session.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "pathID")
		var req struct {
			Completed   []string `json:"completed"`
			PassedTests []string `json:"passed_tests"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		p, ok := cat.PathByID(id)
		if !ok {
			http.Error(w, "path not found", 404)
			return
		}
		tests := cat.TestsForPath(id)
		unlocked := unlock.UnlockedVideos(p, req.Completed, req.PassedTests, tests)

		// Locked videos may still have a test the learner can take now.
		gating := map[string]string{}
		isUnlocked := map[string]struct{}{}
		for _, v := range unlocked {
			isUnlocked[v] = struct{}{}
		}
		for _, v := range p.Videos {
			if _, ok := isUnlocked[v.ID]; ok {
				continue
			}
			if t, ok := unlock.GatingTestFor(v.ID, tests, req.PassedTests); ok {
				gating[v.ID] = t.ID
			}
		}

		summary, _ := ctrl.Summarize(id, req.Completed)
		_ = json.NewEncoder(w).Encode(struct {
			Unlocked    []string            `json:"unlocked"`
			GatingTests map[string]string   `json:"gating_tests"`
			Summary     session.PathSummary `json:"summary"`
		}{unlocked, gating, summary})
	}
}
