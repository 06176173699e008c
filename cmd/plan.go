package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/scoring"
	"github.com/abhisek/bandwise/internal/skill"
	"github.com/abhisek/bandwise/internal/ui/theme"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print a study plan toward a target band",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetFloat64("target")
		weeks, _ := cmd.Flags().GetInt("weeks")
		levelName, _ := cmd.Flags().GetString("level")

		level, err := skill.ParseLevel(levelName)
		if err != nil {
			return err
		}
		p, err := scoring.BuildPlan(target, level, weeks)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Study plan: band %.1f in %d weeks", p.TargetBand, p.DurationWeeks)))
		fmt.Fprintln(out, theme.Subtitle.Render("Current level: "+string(p.CurrentLevel)))
		fmt.Fprintln(out)

		fmt.Fprintln(out, theme.Label.Render("Daily schedule"))
		for _, a := range p.DailySchedule {
			fmt.Fprintf(out, "  %-22s %3d min\n", a.Area, a.Minutes)
		}
		fmt.Fprintf(out, "  %-22s %3d min\n", "Total", p.TotalDailyMinutes())
		fmt.Fprintln(out)

		fmt.Fprintln(out, theme.Label.Render("Weekly goals"))
		for _, g := range p.WeeklyGoals {
			fmt.Fprintln(out, "  "+g)
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, theme.Label.Render("Resources"))
		for _, r := range p.Resources {
			fmt.Fprintf(out, "  %-10s %v\n", r.Skill.DisplayName(), r.Items)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Float64P("target", "t", 7.0, "Target band (1.0-9.0)")
	planCmd.Flags().IntP("weeks", "w", 8, "Plan duration in weeks")
	planCmd.Flags().StringP("level", "l", string(skill.Intermediate), "Current level: beginner, intermediate or advanced")
}
