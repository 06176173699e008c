package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/session"
)

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate English practice text to Arabic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService(cmd.Context(), nil, stderrLogger())
		if err != nil {
			return err
		}
		out, err := svc.Translate(cmd.Context(), strings.Join(args, " "), session.Arabic)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
