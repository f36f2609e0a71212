package session

import (
	"reflect"
	"testing"

	"github.com/learnflow/learnflow/internal/assess"
	"github.com/learnflow/learnflow/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Paths: []catalog.Path{
			{
				ID: "p",
				Videos: []catalog.Video{
					{ID: "v1", Order: 1},
					{ID: "v2", Order: 2},
					{ID: "v3", Order: 3},
				},
			},
		},
		Tests: []catalog.AssessmentTest{
			{ID: "T", PathID: "p", PassingScore: 85, PrerequisiteFor: []string{"v3"}},
		},
	}
}

func TestRecordVideoWatchIdempotent(t *testing.T) {
	c := NewController(testCatalog())

	once := c.RecordVideoWatch(nil, "v1")
	twice := c.RecordVideoWatch(once, "v1")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("recording twice diverged: %v vs %v", once, twice)
	}
	if !reflect.DeepEqual(once, []string{"v1"}) {
		t.Fatalf("completed = %v", once)
	}

	// Input slice is never mutated.
	in := []string{"v1"}
	_ = c.RecordVideoWatch(in, "v2")
	if !reflect.DeepEqual(in, []string{"v1"}) {
		t.Fatalf("input set mutated: %v", in)
	}
}

func TestRecordTestAttempt(t *testing.T) {
	c := NewController(testCatalog())
	test, _ := c.cat.TestByID("T")

	passed, newly, changed := c.RecordTestAttempt(nil, test, assess.Attempt{TestID: "T", Score: 90, Passed: true})
	if !changed || !reflect.DeepEqual(passed, []string{"T"}) {
		t.Fatalf("pass not recorded: %v changed=%v", passed, changed)
	}
	if !reflect.DeepEqual(newly, []string{"v3"}) {
		t.Fatalf("newly unlocked = %v, want [v3]", newly)
	}

	// Failed attempt: set unchanged, nothing unlocked.
	passed2, newly2, changed2 := c.RecordTestAttempt(passed, test, assess.Attempt{TestID: "T", Score: 40, Passed: false})
	if changed2 || len(newly2) != 0 || !reflect.DeepEqual(passed2, passed) {
		t.Fatalf("failed attempt must be a no-op: %v %v %v", passed2, newly2, changed2)
	}

	// Re-passing an already-passed test: set unchanged but unlocks reported.
	passed3, newly3, changed3 := c.RecordTestAttempt(passed, test, assess.Attempt{TestID: "T", Score: 95, Passed: true})
	if changed3 || !reflect.DeepEqual(passed3, passed) {
		t.Fatalf("repeat pass must not duplicate: %v", passed3)
	}
	if !reflect.DeepEqual(newly3, []string{"v3"}) {
		t.Fatalf("repeat pass unlocks = %v", newly3)
	}
}

func TestComputeUnlockedVideos(t *testing.T) {
	c := NewController(testCatalog())

	got, ok := c.ComputeUnlockedVideos("p", []string{"v1"}, []string{"T"})
	if !ok {
		t.Fatalf("path should resolve")
	}
	want := map[string]bool{"v1": true, "v2": true, "v3": true}
	gotSet := map[string]bool{}
	for _, id := range got {
		gotSet[id] = true
	}
	if !reflect.DeepEqual(gotSet, want) {
		t.Fatalf("unlocked = %v, want %v", got, want)
	}

	if _, ok := c.ComputeUnlockedVideos("missing", nil, nil); ok {
		t.Fatalf("unknown path must report not-ok")
	}
}

func TestSummarize(t *testing.T) {
	c := NewController(testCatalog())
	sum, ok := c.Summarize("p", []string{"v1", "v3", "not-in-path"})
	if !ok {
		t.Fatalf("path should resolve")
	}
	if sum.Completed != 2 || sum.Total != 3 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.Percentage < 66 || sum.Percentage > 67 {
		t.Fatalf("percentage = %v", sum.Percentage)
	}
}
