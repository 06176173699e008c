package question

import (
	"fmt"
	"strings"

	"github.com/abhisek/bandwise/internal/skill"
)

const systemPrompt = `You are an IELTS examiner writing practice material for Arabic-speaking candidates in Oman.

Rules:
- Generate a single question for the given section, question type and difficulty.
- Make it similar to actual IELTS exam questions.
- Listening and reading questions must have exactly one correct answer. For selectable questions give options labelled "A) ", "B) ", ... and answer with the letter only.
- Listening questions include the transcript in the passage field; reading questions include the passage.
- Writing and speaking prompts are open-ended: leave correct_answer empty and use the explanation to describe what a band 7+ response covers.
- Keep the question under 1500 characters.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Section: %s\n", input.Skill.DisplayName())
	fmt.Fprintf(&b, "Type: %s\n", input.Type)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	if sec, ok := skill.SectionFor(input.Skill); ok {
		if len(sec.Parts) > 0 {
			fmt.Fprintf(&b, "Exam parts: %s\n", strings.Join(sec.Parts, "; "))
		}
		if len(sec.Topics) > 0 {
			fmt.Fprintf(&b, "Common topics: %s\n", strings.Join(sec.Topics, ", "))
		}
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
