package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog holds the static Path/Test tables, loaded once at startup and
// read-only afterwards.
type Catalog struct {
	Paths []Path           `json:"paths"`
	Tests []AssessmentTest `json:"tests"`
}

// Load reads a JSON catalog from path, or returns the built-in seed when
// path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Seed(), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(buf, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}

func (c *Catalog) PathByID(id string) (Path, bool) {
	for _, p := range c.Paths {
		if p.ID == id {
			return p, true
		}
	}
	return Path{}, false
}

func (c *Catalog) TestByID(id string) (AssessmentTest, bool) {
	for _, t := range c.Tests {
		if t.ID == id {
			return t, true
		}
	}
	return AssessmentTest{}, false
}

// TestsForPath returns the tests conventionally belonging to a path. A test's
// PrerequisiteFor may still reference videos in other paths; that is left
// intact (see VideosUnlockedByTest).
func (c *Catalog) TestsForPath(pathID string) []AssessmentTest {
	var out []AssessmentTest
	for _, t := range c.Tests {
		if t.PathID == pathID {
			out = append(out, t)
		}
	}
	return out
}

// VideosUnlockedByTest returns the raw PrerequisiteFor list of a passed test.
// No path filtering: any test can gate any video by identifier.
func (c *Catalog) VideosUnlockedByTest(testID string, passed bool) []string {
	if !passed {
		return nil
	}
	t, ok := c.TestByID(testID)
	if !ok {
		return nil
	}
	return t.PrerequisiteFor
}
