// Package styles provides reusable lipgloss-based terminal output styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds lipgloss colors and pre-built styles for CLI output.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Key          lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	Badge        lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#909090"),
		Accent:  lipgloss.Color("#4ade80"),
		Error:   lipgloss.Color("#f87171"),
		Warning: lipgloss.Color("#fbbf24"),
		Success: lipgloss.Color("#4ade80"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Key = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	t.ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	t.Badge = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(lipgloss.Color("#2d2d2d")).
		Padding(0, 1)

	return t
}

// SeverityBadge renders a severity label as a colored badge.
func (t *Theme) SeverityBadge(severity string) string {
	switch severity {
	case "error":
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0a0a0b")).
			Background(t.Error).
			Padding(0, 1).
			Render("ERROR")
	case "warning":
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0a0a0b")).
			Background(t.Warning).
			Padding(0, 1).
			Render("WARN")
	default:
		return t.Badge.Render(severity)
	}
}
