// Package scoring grades answers and turns practice history into band
// projections and study plans. Everything here is pure.
package scoring

import (
	"strings"

	"github.com/abhisek/bandwise/internal/question"
)

// Outcome is the result of evaluating one submitted answer.
type Outcome struct {
	Correct       bool   `json:"is_correct"`
	Score         int    `json:"score"`
	Submitted     string `json:"submitted"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
}

// Evaluate grades submitted against q. Matching is exact after trimming the
// submission and ignoring case. Questions without a correct answer always
// score zero; open-ended responses are not rated.
func Evaluate(q question.Question, submitted string) Outcome {
	out := Outcome{
		Submitted:     submitted,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}
	if !q.HasAnswer() {
		return out
	}
	if strings.ToLower(strings.TrimSpace(submitted)) == strings.ToLower(q.CorrectAnswer) {
		out.Correct = true
		out.Score = 1
	}
	return out
}
