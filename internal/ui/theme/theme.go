package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#2563EB") // Exam blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Neutral = lipgloss.NewStyle().
		Foreground(Accent)
)

// Band renders a band score coloured by its classification: below 6.0 is an
// improvement area, 7.0 and above a strength.
func Band(b float64) string {
	s := fmt.Sprintf("%.1f", b)
	switch {
	case b < 6.0:
		return Incorrect.Render(s)
	case b >= 7.0:
		return Correct.Render(s)
	default:
		return Neutral.Render(s)
	}
}

// Bar renders a horizontal bar of width cells filled to fraction.
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction*float64(width) + 0.5)
	return lipgloss.NewStyle().Foreground(Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("░", width-filled))
}

// Verdict renders the result of one answer.
func Verdict(correct bool) string {
	if correct {
		return Correct.Render("✓ Correct")
	}
	return Incorrect.Render("✗ Incorrect")
}
