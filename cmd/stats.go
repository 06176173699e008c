package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded answer statistics per skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().AnswerStatsBySkill(cmd.Context())
		if err != nil {
			return fmt.Errorf("query answer stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Printf("%-10s  %7s  %7s  %5s  %s\n", "Skill", "Answers", "Correct", "Users", "Accuracy")
		fmt.Println(strings.Repeat("─", 60))
		for _, st := range stats {
			fmt.Printf("%-10s  %7d  %7d  %5d  %s %5.1f%%\n",
				st.Skill, st.Answers, st.Correct, st.Users,
				theme.Bar(st.Accuracy, 16), st.Accuracy*100)
		}
		return nil
	},
}
