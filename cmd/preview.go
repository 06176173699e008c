package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/llm"
	"github.com/abhisek/bandwise/internal/question"
	"github.com/abhisek/bandwise/internal/skill"
	"github.com/abhisek/bandwise/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a skill (no database)",
	Long: `Generate questions for one skill and print them with their answers.

This is a stateless developer tool: no archive fallback, no session and no
events. Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("skill", "", "Skill: listening, reading, writing or speaking (required)")
	previewCmd.Flags().String("type", "", "Question type, e.g. Multiple Choice")
	previewCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium or hard")
	previewCmd.Flags().Int("count", 3, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("skill")
}

func runPreview(cmd *cobra.Command, args []string) error {
	skillVal, _ := cmd.Flags().GetString("skill")
	typeVal, _ := cmd.Flags().GetString("type")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	sk, err := skill.ParseSkill(skillVal)
	if err != nil {
		return err
	}
	diff, err := skill.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}
	if typeVal == "" {
		if types := skill.QuestionTypes(sk); len(types) > 0 {
			typeVal = types[0]
		} else {
			typeVal = "general"
		}
	}

	// No EventRepo: nothing is recorded.
	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, nil, stderrLogger())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	gen := question.NewLLMGenerator(provider, question.DefaultConfig())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", theme.Title.Render(fmt.Sprintf("%s · %s · %s", sk.DisplayName(), typeVal, diff)))
	fmt.Fprintf(out, "Generating %d questions...\n\n", count)

	var prior []string
	var failed int
	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, question.GenerateInput{
			Skill:          sk,
			Type:           typeVal,
			Difficulty:     diff,
			PriorQuestions: prior,
		})
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s\n\n", theme.Incorrect.Render(fmt.Sprintf("Question %d: generation failed: %v", i, err)))
			continue
		}
		prior = append(prior, q.Prompt)

		fmt.Fprintf(out, "── Question %d/%d ──\n", i, count)
		if q.Passage != "" {
			fmt.Fprintln(out, theme.Subtitle.Render(q.Passage))
		fmt.Fprintln(out)
		}
		fmt.Fprintln(out, q.Prompt)
		for _, c := range q.Choices {
			fmt.Fprintln(out, "  "+c)
		}
		if q.CorrectAnswer != "" {
			fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Answer:"), q.CorrectAnswer)
		}
		if q.Explanation != "" {
			fmt.Fprintln(out, theme.Hint.Render(q.Explanation))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Summary: %d/%d generated ──\n", count-failed, count)
	return nil
}
