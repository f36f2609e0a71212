// Package unlock computes which videos of a path a learner can watch.
// Unlocking is the union of two independent mechanisms: passing a gating test
// and finishing the previous video in order. Either is sufficient.
package unlock

import (
	"sort"

	"github.com/learnflow/learnflow/internal/catalog"
)

// UnlockedVideos returns the IDs a learner may watch, given the path's video
// list, the completed-video set and the passed-test set. Pure function; the
// result is deduplicated and insertion-ordered:
//
//  1. videos referenced by PrerequisiteFor of any passed test for this path,
//  2. the first video in sorted order (always available),
//  3. each video whose predecessor in sorted order is completed.
func UnlockedVideos(p catalog.Path, completed, passedTests []string, tests []catalog.AssessmentTest) []string {
	videos := sortedByOrder(p.Videos)

	passed := toSet(passedTests)
	done := toSet(completed)

	var out []string
	seen := map[string]struct{}{}
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, t := range tests {
		if _, ok := passed[t.ID]; !ok {
			continue
		}
		for _, vid := range t.PrerequisiteFor {
			add(vid)
		}
	}

	if len(videos) > 0 {
		add(videos[0].ID)
	}

	for i := 0; i+1 < len(videos); i++ {
		if _, ok := done[videos[i].ID]; ok {
			add(videos[i+1].ID)
		}
	}

	return out
}

// GatingTestFor returns the first test whose PrerequisiteFor contains videoID
// and which has not been passed yet. When none exists the caller should
// present a "complete previous steps" state instead of a test action.
func GatingTestFor(videoID string, tests []catalog.AssessmentTest, passedTests []string) (catalog.AssessmentTest, bool) {
	passed := toSet(passedTests)
	for _, t := range tests {
		if _, ok := passed[t.ID]; ok {
			continue
		}
		for _, vid := range t.PrerequisiteFor {
			if vid == videoID {
				return t, true
			}
		}
	}
	return catalog.AssessmentTest{}, false
}

// sortedByOrder sorts ascending by Order; the sort is stable so catalog
// position breaks ties.
func sortedByOrder(videos []catalog.Video) []catalog.Video {
	out := make([]catalog.Video, len(videos))
	copy(out, videos)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func toSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
