package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/pfin/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{80, 81, 119, 120} {
		widths := LayoutRow(total, 3)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != total {
			t.Fatalf("LayoutRow(%d, 3) sums to %d", total, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22, false)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22, false)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d has no ANSI codes", i)
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "A", 30, false)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20, true)

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	want := lipgloss.Width(tallCard) + lipgloss.Width(shortCard)
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Total Expenses", Value: "₹1,200"},
		{Label: "Daily Average", Value: "₹40"},
		{Label: "Active Items", Value: "3", Hint: "of 62"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestRenderTabBarWidths(t *testing.T) {
	for active := range Tabs {
		bar := RenderTabBar(active, 100)
		if w := lipgloss.Width(bar); w != 100 {
			t.Fatalf("active=%d bar width = %d, want 100", active, w)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	tests := map[rune]int{'f': 0, 'u': 1, 'x': 2, 'z': -1}
	for key, want := range tests {
		if got := TabIdxByKey(key); got != want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestRenderStatusBarFillsWidth(t *testing.T) {
	bar := RenderStatusBar(60, "[?]help  [q]uit", "mock mode", "")
	if w := lipgloss.Width(bar); w != 60 {
		t.Fatalf("status bar width = %d, want 60", w)
	}
	if !strings.Contains(RenderStatusBar(60, "hints", "", "saved"), "saved") {
		t.Fatal("flash text missing")
	}
}
