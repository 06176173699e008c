package store

import (
	"strings"
	"time"
)

// buildWhere renders the filter part of QueryOpts as a WHERE clause and its
// arguments. Timestamps are stored as RFC3339Nano text in UTC, which sorts
// lexically.
func buildWhere(opts QueryOpts) (string, []any) {
	var conds []string
	var args []any

	if opts.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, formatTime(opts.From))
	}
	if !opts.To.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, formatTime(opts.To))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildLimit(opts QueryOpts) (string, []any) {
	if opts.Limit <= 0 {
		return "", nil
	}
	return " LIMIT ?", []any{opts.Limit}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
