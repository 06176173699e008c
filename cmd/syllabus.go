package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/skill"
	"github.com/abhisek/bandwise/internal/ui/theme"
)

var syllabusCmd = &cobra.Command{
	Use:   "syllabus",
	Short: "Show the structure of each exam section",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, sec := range skill.Syllabus() {
			fmt.Fprintln(out, theme.Title.Render(sec.Skill.DisplayName()))
			for _, p := range sec.Parts {
				fmt.Fprintln(out, "  "+p)
			}
			printList(cmd, "Question types", sec.QuestionTypes)
			printList(cmd, "Task 1", sec.Task1Types)
			printList(cmd, "Task 2", sec.Task2Types)
			printList(cmd, "Topics", sec.Topics)
			fmt.Fprintln(out)
		}
		return nil
	},
}

func printList(cmd *cobra.Command, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", theme.Label.Render(label+":"), strings.Join(items, ", "))
}
