package assess

import (
	"math"
	"time"

	"github.com/learnflow/learnflow/internal/catalog"
)

// Unanswered is the answer encoding for a question the learner never touched.
// It compares unequal to every option index and therefore counts as wrong.
const Unanswered = -1

// Attempt is one completed submission of an assessment.
type Attempt struct {
	ID          string    `json:"id"`
	TestID      string    `json:"test_id"`
	UserID      string    `json:"user_id,omitempty"`
	Answers     []int     `json:"answers"`
	Score       int       `json:"score"` // 0-100
	Passed      bool      `json:"passed"`
	CompletedAt time.Time `json:"completed_at"`
	TimeSpent   int       `json:"time_spent"` // seconds
}

// CalculateScore grades a submitted answer-index array against the key.
// Positions beyond either slice count as wrong; an empty key scores 0 rather
// than dividing by zero. Rounds half up to an integer percent.
func CalculateScore(answers, correctAnswers []int) int {
	if len(correctAnswers) == 0 {
		return 0
	}
	correct := 0
	for i, want := range correctAnswers {
		if i < len(answers) && answers[i] == want {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(correctAnswers)) * 100))
}

// AnswerKey extracts the correct-answer index array of a test, in question
// order.
func AnswerKey(t catalog.AssessmentTest) []int {
	key := make([]int, len(t.Questions))
	for i, q := range t.Questions {
		key[i] = q.CorrectAnswer
	}
	return key
}

// Grade scores an answer array against a test and applies its inclusive
// passing threshold.
func Grade(t catalog.AssessmentTest, answers []int) (score int, passed bool) {
	score = CalculateScore(answers, AnswerKey(t))
	return score, score >= t.PassingScore
}
