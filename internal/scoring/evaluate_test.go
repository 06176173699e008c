package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/bandwise/internal/question"
	"github.com/abhisek/bandwise/internal/skill"
)

func TestEvaluateKnownAnswer(t *testing.T) {
	q := question.Question{Skill: skill.Listening, Prompt: "p", CorrectAnswer: "B", Explanation: "because"}

	tests := []struct {
		submitted string
		correct   bool
	}{
		{"B", true},
		{" b ", true},
		{"\tb\n", true},
		{"C", false},
		{"", false},
		{"B)", false},
	}
	for _, tt := range tests {
		out := Evaluate(q, tt.submitted)
		assert.Equal(t, tt.correct, out.Correct, "submitted %q", tt.submitted)
		if tt.correct {
			assert.Equal(t, 1, out.Score)
		} else {
			assert.Equal(t, 0, out.Score)
		}
		assert.Equal(t, tt.submitted, out.Submitted)
		assert.Equal(t, "B", out.CorrectAnswer)
		assert.Equal(t, "because", out.Explanation)
	}
}

func TestEvaluateMultiWordAnswerIgnoresCase(t *testing.T) {
	q := question.Question{Prompt: "p", CorrectAnswer: "shared kitchen"}
	assert.True(t, Evaluate(q, "  Shared Kitchen ").Correct)
	assert.False(t, Evaluate(q, "shared  kitchen").Correct)
}

func TestEvaluateWithoutAnswerNeverScores(t *testing.T) {
	q := question.Question{Skill: skill.Writing, Prompt: "Write an essay."}
	for _, submitted := range []string{"", "A thoughtful essay", "Write an essay."} {
		out := Evaluate(q, submitted)
		assert.False(t, out.Correct)
		assert.Equal(t, 0, out.Score)
	}
}

func TestEvaluateSentinel(t *testing.T) {
	out := Evaluate(question.Sentinel(skill.Reading), "anything")
	assert.False(t, out.Correct)
	assert.Equal(t, 0, out.Score)
}
