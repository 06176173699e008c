package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/scoring"
	"github.com/abhisek/bandwise/internal/skill"
	"github.com/abhisek/bandwise/internal/ui/theme"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab [level]",
	Short: "Show vocabulary lists for a level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := skill.Intermediate
		if len(args) == 1 {
			level = skill.LevelOrDefault(args[0])
		}
		v := scoring.Vocabulary(level)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render("Vocabulary · "+string(v.Level)))
		fmt.Fprintln(out, theme.Label.Render("Academic"))
		fmt.Fprintln(out, "  "+strings.Join(v.Academic, ", "))
		fmt.Fprintln(out, theme.Label.Render("General"))
		fmt.Fprintln(out, "  "+strings.Join(v.General, ", "))
		fmt.Fprintln(out, theme.Label.Render("Exercises"))
		for _, e := range v.Exercises {
			fmt.Fprintln(out, "  "+e)
		}
		return nil
	},
}
