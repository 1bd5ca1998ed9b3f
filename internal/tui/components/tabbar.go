package components

import (
	"strings"

	"github.com/theirongolddev/pfin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry of the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // byte offset of Key in Name, -1 when Name lacks it
}

// Tabs lists the dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Fixed Costs", Key: 'f', KeyPos: 0},
	{Name: "Upload", Key: 'u', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1},
}

const tabSeparator = "│"

// TabVisualWidth returns the rendered width of tab, matching RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active && tab.KeyPos < 0 {
		w += 3 // "[x]"
	}
	return w
}

// RenderTabBar renders a single-row tab bar with activeIdx highlighted.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)
	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	var b strings.Builder
	for i, tab := range Tabs {
		if i == activeIdx {
			b.WriteString(activeStyle.Render(" " + tab.Name + " "))
		} else {
			b.WriteString(inactiveStyle.Render(" "))
			if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
				b.WriteString(inactiveStyle.Render(tab.Name[:tab.KeyPos]))
				b.WriteString(keyStyle.Render(tab.Name[tab.KeyPos : tab.KeyPos+1]))
				b.WriteString(inactiveStyle.Render(tab.Name[tab.KeyPos+1:]))
			} else {
				b.WriteString(inactiveStyle.Render(tab.Name))
				b.WriteString(inactiveStyle.Render("["))
				b.WriteString(keyStyle.Render(string(tab.Key)))
				b.WriteString(inactiveStyle.Render("]"))
			}
			b.WriteString(inactiveStyle.Render(" "))
		}
		if i < len(Tabs)-1 {
			b.WriteString(sepStyle.Render(tabSeparator))
		}
	}

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(b.String())
}

// TabIdxByKey returns the tab index for a shortcut key, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
