package question

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxPromptLen      = 1500
	maxExplanationLen = 1500
	minChoices        = 2
	maxChoices        = 6
)

// StructuralValidator checks required fields and length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if utf8.RuneCountInString(q.Prompt) > maxPromptLen {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question exceeds %d characters", maxPromptLen),
		}
	}
	if utf8.RuneCountInString(q.Explanation) > maxExplanationLen {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("explanation exceeds %d characters", maxExplanationLen),
		}
	}
	if n := len(q.Choices); n != 0 && (n < minChoices || n > maxChoices) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("options must be empty or hold %d-%d entries, got %d", minChoices, maxChoices, n),
		}
	}
	for i, c := range q.Choices {
		if strings.TrimSpace(c) == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("option %d is empty", i+1)}
		}
	}
	return nil
}

// ChoiceAnswerValidator checks that the correct answer of a selectable
// question names one of its options, either by letter ("B") or by text.
type ChoiceAnswerValidator struct{}

func (v *ChoiceAnswerValidator) Name() string { return "choice-answer" }

func (v *ChoiceAnswerValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if len(q.Choices) == 0 || q.CorrectAnswer == "" {
		return nil
	}
	answer := strings.TrimSpace(q.CorrectAnswer)
	for i, c := range q.Choices {
		if strings.EqualFold(answer, choiceLabel(i)) {
			return nil
		}
		if strings.EqualFold(answer, strings.TrimSpace(c)) || strings.EqualFold(answer, choiceText(c)) {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("answer %q does not match any option", answer),
	}
}

// GradabilityValidator requires an answer for skills graded by exact match.
type GradabilityValidator struct{}

func (v *GradabilityValidator) Name() string { return "gradability" }

func (v *GradabilityValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	if input.Skill.Gradable() && strings.TrimSpace(q.CorrectAnswer) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s questions need a correct answer", input.Skill),
		}
	}
	return nil
}

// choiceLabel returns "A", "B", ... for index i.
func choiceLabel(i int) string {
	return string(rune('A' + i))
}

// choiceText strips a leading "A) " or "A. " label from an option.
func choiceText(option string) string {
	option = strings.TrimSpace(option)
	if len(option) >= 3 && option[0] >= 'A' && option[0] <= 'Z' && (option[1] == ')' || option[1] == '.') {
		return strings.TrimSpace(option[2:])
	}
	return option
}
