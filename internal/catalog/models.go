package catalog

// Video is one step of a learning path. Catalog data is immutable after load.
type Video struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Topic      string `json:"topic,omitempty"`
	Difficulty string `json:"difficulty,omitempty"` // beginner|intermediate|advanced
	Duration   string `json:"duration,omitempty"`   // display form, e.g. "12:34"
	URL        string `json:"url,omitempty"`
	Order      int    `json:"order"` // sequential unlock order; may be non-contiguous
}

type Path struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Videos      []Video `json:"videos"`
}

type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"` // order-significant; option index is the answer encoding
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"` // easy|medium|hard
}

type AssessmentTest struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	PathID          string     `json:"path_id"`
	PrerequisiteFor []string   `json:"prerequisite_for"` // video IDs unlocked on passing
	PassingScore    int        `json:"passing_score"`    // percent, inclusive threshold
	TimeLimitMin    int        `json:"time_limit_min"`
	Questions       []Question `json:"questions"`
}
