package assess

import (
	"testing"

	"github.com/learnflow/learnflow/internal/catalog"
)

func TestCalculateScore(t *testing.T) {
	cases := []struct {
		name    string
		answers []int
		correct []int
		want    int
	}{
		{"all unanswered", []int{-1, -1, -1}, []int{0, 1, 2}, 0},
		{"exact match", []int{0, 1, 2}, []int{0, 1, 2}, 100},
		{"four of five", []int{0, 1, 2, -1, 0}, []int{0, 1, 2, 3, 0}, 80},
		{"one of three rounds up", []int{0, 9, 9}, []int{0, 1, 2}, 33},
		{"two of three rounds up", []int{0, 1, 9}, []int{0, 1, 2}, 67},
		{"empty key", []int{}, []int{}, 0},
		{"short answers count wrong", []int{0}, []int{0, 1}, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CalculateScore(c.answers, c.correct); got != c.want {
				t.Fatalf("CalculateScore(%v,%v) = %d, want %d", c.answers, c.correct, got, c.want)
			}
		})
	}
}

func TestGradeInclusiveThreshold(t *testing.T) {
	test := catalog.AssessmentTest{
		PassingScore: 85,
		Questions: []catalog.Question{
			{Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Options: []string{"a", "b"}, CorrectAnswer: 1},
			{Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Options: []string{"a", "b"}, CorrectAnswer: 1},
			{Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	}

	// 4/5 = 80 < 85: fail.
	score, passed := Grade(test, []int{0, 1, 0, 1, 1})
	if score != 80 || passed {
		t.Fatalf("got score=%d passed=%v, want 80/false", score, passed)
	}
	// 5/5 = 100 >= 85: pass.
	score, passed = Grade(test, []int{0, 1, 0, 1, 0})
	if score != 100 || !passed {
		t.Fatalf("got score=%d passed=%v, want 100/true", score, passed)
	}
}

func TestGradeExactThreshold(t *testing.T) {
	// score == passingScore must pass (inclusive).
	test := catalog.AssessmentTest{
		PassingScore: 50,
		Questions: []catalog.Question{
			{Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	}
	score, passed := Grade(test, []int{0, 1})
	if score != 50 || !passed {
		t.Fatalf("got score=%d passed=%v, want 50/true", score, passed)
	}
}
