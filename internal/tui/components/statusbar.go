package components

import (
	"strings"

	"github.com/theirongolddev/pfin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: key hints on the left, info on the
// right. A non-empty flash replaces the hints.
func RenderStatusBar(width int, hints, info, flash string) string {
	t := theme.Active

	base := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	flashStyle := lipgloss.NewStyle().
		Foreground(t.Orange).
		Background(t.Surface).
		Bold(true)

	left := base.Render(" " + hints)
	if flash != "" {
		left = flashStyle.Render(" " + flash)
	}
	right := base.Render(info + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return left + base.Render(strings.Repeat(" ", padding)) + right
}
