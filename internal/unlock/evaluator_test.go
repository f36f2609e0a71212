package unlock

import (
	"reflect"
	"testing"

	"github.com/learnflow/learnflow/internal/catalog"
)

func threeStepPath() (catalog.Path, []catalog.AssessmentTest) {
	p := catalog.Path{
		ID: "p",
		Videos: []catalog.Video{
			{ID: "v1", Order: 1},
			{ID: "v2", Order: 2},
			{ID: "v3", Order: 3},
		},
	}
	tests := []catalog.AssessmentTest{
		{ID: "T", PathID: "p", PassingScore: 85, PrerequisiteFor: []string{"v3"}},
	}
	return p, tests
}

func asSet(ids []string) map[string]bool {
	m := map[string]bool{}
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func TestUnlockScenarios(t *testing.T) {
	p, tests := threeStepPath()

	cases := []struct {
		name      string
		completed []string
		passed    []string
		want      []string
	}{
		{"nothing done", nil, nil, []string{"v1"}},
		{"first completed", []string{"v1"}, nil, []string{"v1", "v2"}},
		{"test passed only", nil, []string{"T"}, []string{"v1", "v3"}},
		{"both mechanisms", []string{"v1", "v2"}, []string{"T"}, []string{"v1", "v2", "v3"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := UnlockedVideos(p, c.completed, c.passed, tests)
			if !reflect.DeepEqual(asSet(got), asSet(c.want)) {
				t.Fatalf("unlocked = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFirstVideoAlwaysUnlocked(t *testing.T) {
	p, tests := threeStepPath()
	got := UnlockedVideos(p, nil, nil, tests)
	if !asSet(got)["v1"] {
		t.Fatalf("first video must always be unlocked, got %v", got)
	}
}

func TestSequentialChainWithoutTests(t *testing.T) {
	p, _ := threeStepPath()
	got := UnlockedVideos(p, []string{"v1", "v2"}, nil, nil)
	want := map[string]bool{"v1": true, "v2": true, "v3": true}
	if !reflect.DeepEqual(asSet(got), want) {
		t.Fatalf("chain unlock = %v, want %v", got, want)
	}
}

func TestPassedTestUnionNotOverride(t *testing.T) {
	// Passing the gate must not suppress chain unlocks, and vice versa.
	p, tests := threeStepPath()
	got := UnlockedVideos(p, []string{"v1"}, []string{"T"}, tests)
	want := map[string]bool{"v1": true, "v2": true, "v3": true}
	if !reflect.DeepEqual(asSet(got), want) {
		t.Fatalf("union unlock = %v, want %v", got, want)
	}
}

func TestStableSortNonContiguousOrder(t *testing.T) {
	p := catalog.Path{
		ID: "p",
		Videos: []catalog.Video{
			{ID: "b", Order: 10},
			{ID: "a", Order: 10}, // tie: catalog position wins
			{ID: "c", Order: 30},
		},
	}
	got := UnlockedVideos(p, nil, nil, nil)
	if len(got) == 0 || got[0] != "b" {
		t.Fatalf("tie must break by catalog position: %v", got)
	}
	got = UnlockedVideos(p, []string{"b"}, nil, nil)
	if !asSet(got)["a"] {
		t.Fatalf("completing b must unlock its stable successor a: %v", got)
	}
}

func TestResultDeduplicatedAndOrdered(t *testing.T) {
	p, tests := threeStepPath()
	// v3 unlocked both by test and by chain; must appear once, test-first order.
	got := UnlockedVideos(p, []string{"v1", "v2"}, []string{"T"}, tests)
	if len(got) != 3 {
		t.Fatalf("expected deduplicated result, got %v", got)
	}
	if got[0] != "v3" {
		t.Fatalf("test-unlocked videos come first in insertion order, got %v", got)
	}
}

func TestEmptyPath(t *testing.T) {
	got := UnlockedVideos(catalog.Path{ID: "empty"}, nil, nil, nil)
	if len(got) != 0 {
		t.Fatalf("empty path unlocks nothing, got %v", got)
	}
}

func TestCrossPathGatingPreserved(t *testing.T) {
	// A test may reference videos outside its nominal path; those IDs pass
	// through untouched.
	p, _ := threeStepPath()
	tests := []catalog.AssessmentTest{
		{ID: "X", PathID: "p", PrerequisiteFor: []string{"other-path-video"}},
	}
	got := UnlockedVideos(p, nil, []string{"X"}, tests)
	if !asSet(got)["other-path-video"] {
		t.Fatalf("cross-path reference must be preserved: %v", got)
	}
}

func TestGatingTestFor(t *testing.T) {
	_, tests := threeStepPath()

	if got, ok := GatingTestFor("v3", tests, nil); !ok || got.ID != "T" {
		t.Fatalf("expected gating test T for v3, got %v ok=%v", got.ID, ok)
	}
	// Already passed: no test to take, caller shows "complete previous steps".
	if _, ok := GatingTestFor("v3", tests, []string{"T"}); ok {
		t.Fatalf("passed test must not be offered again")
	}
	// No test gates v2.
	if _, ok := GatingTestFor("v2", tests, nil); ok {
		t.Fatalf("no gating test exists for v2")
	}
}
