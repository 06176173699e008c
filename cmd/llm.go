package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/llm"
	"github.com/abhisek/bandwise/internal/store"
	"github.com/abhisek/bandwise/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged LLM calls, token usage and cost",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		return withEvents(cmd, func(ctx context.Context, repo store.EventRepo) error {
			return listLLMEvents(ctx, cmd.OutOrStdout(), repo, llm.Purpose(purpose), limit)
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}
		return withEvents(cmd, func(ctx context.Context, repo store.EventRepo) error {
			return viewLLMEvent(ctx, cmd.OutOrStdout(), repo, id)
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Token usage per purpose, estimated cost per model and the active profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEvents(cmd, func(ctx context.Context, repo store.EventRepo) error {
			return llmStats(ctx, cmd.OutOrStdout(), repo, llm.ConfigFromEnv().Profiles)
		})
	},
}

func withEvents(cmd *cobra.Command, fn func(context.Context, store.EventRepo) error) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(cmd.Context(), s.EventRepo())
}

func listLLMEvents(ctx context.Context, w io.Writer, repo store.EventRepo, purpose llm.Purpose, limit int) error {
	opts := store.QueryOpts{Limit: limit}
	if purpose != "" {
		// Purpose is filtered here, so the limit applies afterwards.
		opts.Limit = 0
	}
	events, err := repo.QueryLLMEvents(ctx, opts)
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tPURPOSE\tPROVIDER\tMODEL\tIN\tOUT\tMS\tOK")
	shown := 0
	for _, e := range events {
		if purpose != "" && e.Purpose != string(purpose) {
			continue
		}
		if limit > 0 && shown == limit {
			break
		}
		shown++
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			e.ID, e.Timestamp.Local().Format(timeLayout), e.Purpose, e.Provider,
			truncate(e.Model, 32), e.InputTokens, e.OutputTokens, e.LatencyMs, okMark(e.Success))
	}
	if shown == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No LLM calls logged."))
		return nil
	}
	return tw.Flush()
}

func viewLLMEvent(ctx context.Context, w io.Writer, repo store.EventRepo, id int) error {
	e, err := repo.GetLLMEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if e == nil {
		return fmt.Errorf("event %d not found", id)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fields := [][2]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format(timeLayout)},
		{"Purpose", e.Purpose},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Success", okMark(e.Success)},
	}
	if e.ErrorMessage != "" {
		fields = append(fields, [2]string{"Error", e.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Fprintf(tw, "%s:\t%s\n", theme.Label.Render(f[0]), f[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, part := range [][2]string{{"Prompt", e.RequestBody}, {"Reply", e.ResponseBody}} {
		body := part[1]
		if body == "" {
			body = theme.Hint.Render("(not captured)")
		}
		fmt.Fprintf(w, "\n%s\n%s\n", theme.Title.Render(part[0]), strings.TrimRight(body, "\n"))
	}
	return nil
}

func llmStats(ctx context.Context, w io.Writer, repo store.EventRepo, profiles map[llm.Purpose]llm.Profile) error {
	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		return fmt.Errorf("query usage: %w", err)
	}
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No LLM usage recorded yet."))
		return nil
	}

	fmt.Fprintln(w, theme.Title.Render("Usage by purpose"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tAVG MS\t")
	var calls, in, out int
	for _, u := range byPurpose {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		calls, in, out = calls+u.Calls, in+u.InputTokens, out+u.OutputTokens
	}
	fmt.Fprintf(tw, "total\t%d\t%d\t%d\t\t\n", calls, in, out)
	if err := tw.Flush(); err != nil {
		return err
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		return fmt.Errorf("query model usage: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("Estimated cost (USD)"))
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MODEL\tCALLS\tCOST\t")
	var total float64
	var unpriced []string
	for _, u := range byModel {
		cost := "?"
		if c := llm.LookupCost(u.Model); c != nil {
			usd := c.Cost(u.InputTokens, u.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", truncate(u.Model, 40), u.Calls, cost)
	}
	label := "total"
	if len(unpriced) > 0 {
		label = "total (partial)"
	}
	fmt.Fprintf(tw, "%s\t\t%s\t\n", label, formatCost(total))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(unpriced) > 0 {
		fmt.Fprintln(w, theme.Hint.Render("No pricing for: "+strings.Join(unpriced, ", ")))
	}

	if len(profiles) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("Active profiles"))
	purposes := make([]string, 0, len(profiles))
	for p := range profiles {
		purposes = append(purposes, string(p))
	}
	sort.Strings(purposes)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PURPOSE\tMODEL\tMAX TOKENS\tTEMPERATURE\tTIMEOUT")
	for _, name := range purposes {
		prof := profiles[llm.Purpose(name)]
		model := prof.Model
		if model == "" {
			model = "(backend default)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%s\n", name, model, prof.MaxTokens, prof.Temperature, prof.Timeout)
	}
	return tw.Flush()
}

func okMark(ok bool) string {
	if ok {
		return theme.Correct.Render("✓")
	}
	return theme.Incorrect.Render("✗")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose ("+string(llm.PurposeQuestion)+", "+string(llm.PurposeTranslate)+")")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
