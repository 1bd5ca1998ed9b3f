package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pfin/internal/cli"
	"github.com/theirongolddev/pfin/internal/ledger"
	"github.com/theirongolddev/pfin/internal/tui/components"
	"github.com/theirongolddev/pfin/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// costsState tracks the fixed costs tab.
type costsState struct {
	cursor  int
	showAll bool

	editing bool
	field   ledger.Field
	name    string
	input   textinput.Model
}

func newCostsState(showAll bool) costsState {
	return costsState{showAll: showAll}
}

// move shifts the cursor by delta within n rows.
func (s *costsState) move(delta, n int) {
	s.cursor += delta
	s.clamp(n)
}

func (s *costsState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// visibleNames lists the rows of the costs grid in display order.
func (a App) visibleNames() []string {
	if a.costs.showAll {
		return a.view.entries.Names()
	}
	return a.view.entries.Active()
}

func (a App) selectedName() (string, bool) {
	names := a.visibleNames()
	if a.costs.cursor < 0 || a.costs.cursor >= len(names) {
		return "", false
	}
	return names[a.costs.cursor], true
}

func (a App) updateCostsKeys(key string) (tea.Model, tea.Cmd, bool) {
	n := len(a.visibleNames())

	switch key {
	case "j", "down":
		a.costs.move(1, n)
	case "k", "up":
		a.costs.move(-1, n)
	case "g", "home":
		a.costs.cursor = 0
	case "G", "end":
		a.costs.cursor = n - 1
		a.costs.clamp(n)
	case "a":
		name, ok := a.selectedName()
		a.costs.showAll = !a.costs.showAll
		a.costs.cursor = 0
		if ok {
			a.costs.cursor = indexOf(a.visibleNames(), name)
		}
		a.costs.clamp(len(a.visibleNames()))
	case "enter", "e":
		return a.startCostEdit(ledger.FieldAmount)
	case "n":
		return a.startCostEdit(ledger.FieldNotes)
	case "r":
		name, ok := a.selectedName()
		if !ok {
			return a, nil, true
		}
		e, _ := a.book.Entry(name)
		next := ledger.Frequency(e.Frequency.Label()).Next()
		if err := a.book.SetField(name, ledger.FieldFrequency, string(next)); err != nil {
			a.flash = err.Error()
		}
	case "c":
		name, ok := a.selectedName()
		if !ok {
			return a, nil, true
		}
		a.book.ClearEntry(name)
		a.flash = "Cleared " + name
		a.costs.clamp(len(a.visibleNames()))
	case "+":
		m, cmd := a.openAddDialog()
		return m, cmd, true
	case "R":
		m, cmd := a.openResetDialog()
		return m, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) startCostEdit(field ledger.Field) (tea.Model, tea.Cmd, bool) {
	name, ok := a.selectedName()
	if !ok {
		return a, nil, true
	}
	e, _ := a.book.Entry(name)

	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40
	ti.Prompt = ""
	switch field {
	case ledger.FieldAmount:
		ti.Placeholder = "0"
		ti.SetValue(e.Amount)
	case ledger.FieldNotes:
		ti.Placeholder = "notes"
		ti.SetValue(e.Notes)
	}
	ti.Focus()

	a.costs.editing = true
	a.costs.field = field
	a.costs.name = name
	a.costs.input = ti
	return a, ti.Cursor.BlinkCmd(), true
}

func (a App) updateCostsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := a.book.SetField(a.costs.name, a.costs.field, a.costs.input.Value()); err != nil {
			a.flash = err.Error()
		}
		a.costs.editing = false
		// The row may have left the active-only view.
		names := a.visibleNames()
		if i := indexOf(names, a.costs.name); i >= 0 {
			a.costs.cursor = i
		}
		a.costs.clamp(len(names))
		return a, nil
	case "esc":
		a.costs.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.costs.input, cmd = a.costs.input.Update(msg)
	return a, cmd
}

func (a App) renderCostsTab(cw, h int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	totals := a.view.totals

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total Expenses", Value: cli.FormatAmount(totals.TotalMonthly, currency), Hint: "per month"},
		{Label: "Daily Average", Value: cli.FormatAmount(totals.DailyAverage, currency), Hint: "30-day month"},
		{Label: "Active Items", Value: cli.FormatNumber(int64(totals.ActiveCount)), Hint: fmt.Sprintf("of %d", len(a.view.entries))},
	}, cw))
	b.WriteString("\n")

	names := a.visibleNames()
	title := fmt.Sprintf("Active Items (%d)", len(names))
	if a.costs.showAll {
		title = fmt.Sprintf("All Items (%d)", len(names))
	}

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(names) == 0 {
		body := muted.Render("No active items. Press [a] to show all items, [+] to add one.")
		b.WriteString(components.ContentCard(title, body, cw, true))
		return b.String()
	}

	// Card chrome: metric row (4-5 lines), card border + title + header.
	rows := h - lipgloss.Height(b.String()) - 4
	if rows < 3 {
		rows = 3
	}
	offset := scrollOffset(a.costs.cursor, rows, len(names))

	innerW := components.CardInnerWidth(cw)
	nameW := innerW * 30 / 100
	amountW, freqW, monthlyW := 14, 11, 14
	notesW := innerW - nameW - amountW - freqW - monthlyW - 6
	if notesW < 0 {
		notesW = 0
	}

	header := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	row := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	sel := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	money := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	nameCol := func(name string) string {
		return fmt.Sprintf("  %-*s ", nameW, truncStr(name, nameW))
	}
	restCols := func(amount, freq, monthly, notes string) string {
		return fmt.Sprintf("%*s %-*s %*s  %-*s",
			amountW, truncStr(amount, amountW),
			freqW, freq,
			monthlyW, monthly,
			notesW, truncStr(notes, notesW))
	}
	line := func(name, amount, freq, monthly, notes string) string {
		return nameCol(name) + restCols(amount, freq, monthly, notes)
	}

	var body strings.Builder
	body.WriteString(header.Render(line("Name", "Amount", "Frequency", "Monthly", "Notes")))
	body.WriteString("\n")

	end := offset + rows
	if end > len(names) {
		end = len(names)
	}
	for i := offset; i < end; i++ {
		name := names[i]
		e := a.view.entries[name]

		monthly := "-"
		if e.IsActive() {
			monthly = cli.FormatAmount(e.MonthlyAmount(), currency)
		}
		amount := cli.FormatRawAmount(e.Amount, currency)
		notes := e.Notes

		if a.costs.editing && name == a.costs.name {
			input := a.costs.input.View()
			if a.costs.field == ledger.FieldAmount {
				amount = ""
			} else {
				notes = ""
			}
			text := line(name, amount, e.Frequency.Label(), monthly, notes)
			body.WriteString(sel.Render(text))
			body.WriteString(sel.Render(" ✎ "))
			body.WriteString(input)
			body.WriteString("\n")
			continue
		}

		text := line(name, amount, e.Frequency.Label(), monthly, notes)
		switch {
		case i == a.costs.cursor:
			body.WriteString(sel.Render(padTo(text, innerW)))
		case e.IsActive():
			body.WriteString(row.Render(nameCol(name)))
			body.WriteString(money.Render(restCols(amount, e.Frequency.Label(), monthly, notes)))
		default:
			body.WriteString(dim.Render(text))
		}
		body.WriteString("\n")
	}
	if len(names) > rows {
		body.WriteString(muted.Render(fmt.Sprintf("  %d-%d of %d", offset+1, end, len(names))))
	}

	b.WriteString(components.ContentCard(title, strings.TrimRight(body.String(), "\n"), cw, true))
	return b.String()
}

// scrollOffset returns the first visible row of a window of size rows that
// contains cursor.
func scrollOffset(cursor, rows, n int) int {
	offset := 0
	if cursor >= rows {
		offset = cursor - rows + 1
	}
	if offset > n-rows {
		offset = n - rows
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func padTo(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
