// Package session orchestrates the progress/unlock/assessment pieces across a
// learner session. Command-in, new-state-out: enrollment, completion and
// passed-test sets are supplied by the caller and returned freshly derived,
// never mutated in place.
package session

import (
	"github.com/learnflow/learnflow/internal/assess"
	"github.com/learnflow/learnflow/internal/catalog"
	"github.com/learnflow/learnflow/internal/unlock"
)

type Controller struct {
	cat *catalog.Catalog
}

func NewController(cat *catalog.Catalog) *Controller {
	return &Controller{cat: cat}
}

// RecordVideoWatch adds videoID to the completed set. Idempotent: recording
// an already-completed video returns an equivalent set.
func (c *Controller) RecordVideoWatch(completed []string, videoID string) []string {
	out := make([]string, len(completed), len(completed)+1)
	copy(out, completed)
	for _, id := range out {
		if id == videoID {
			return out
		}
	}
	return append(out, videoID)
}

// RecordTestAttempt folds a finished attempt into the passed-test set. A
// failed attempt leaves the set unchanged and unlocks nothing; a passing one
// adds the test ID and reports its PrerequisiteFor videos as newly unlocked.
func (c *Controller) RecordTestAttempt(passed []string, t catalog.AssessmentTest, a assess.Attempt) (passedTests []string, newlyUnlocked []string, changed bool) {
	out := make([]string, len(passed))
	copy(out, passed)
	if !a.Passed {
		return out, nil, false
	}
	for _, id := range out {
		if id == t.ID {
			return out, t.PrerequisiteFor, false
		}
	}
	return append(out, t.ID), t.PrerequisiteFor, true
}

// ComputeUnlockedVideos derives the unlock set for a path from current
// completion and passed-test state.
func (c *Controller) ComputeUnlockedVideos(pathID string, completed, passedTests []string) ([]string, bool) {
	p, ok := c.cat.PathByID(pathID)
	if !ok {
		return nil, false
	}
	return unlock.UnlockedVideos(p, completed, passedTests, c.cat.TestsForPath(pathID)), true
}

// PathSummary is the header-level completion stat for one path.
type PathSummary struct {
	PathID     string  `json:"path_id"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Summarize counts path videos present in the completed set.
func (c *Controller) Summarize(pathID string, completed []string) (PathSummary, bool) {
	p, ok := c.cat.PathByID(pathID)
	if !ok {
		return PathSummary{}, false
	}
	done := map[string]struct{}{}
	for _, id := range completed {
		done[id] = struct{}{}
	}
	n := 0
	for _, v := range p.Videos {
		if _, ok := done[v.ID]; ok {
			n++
		}
	}
	sum := PathSummary{PathID: pathID, Completed: n, Total: len(p.Videos)}
	if sum.Total > 0 {
		sum.Percentage = float64(n) / float64(sum.Total) * 100
	}
	return sum, true
}
