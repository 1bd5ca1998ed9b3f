package tui

import (
	"errors"
	"strings"

	"github.com/theirongolddev/pfin/internal/ledger"
	"github.com/theirongolddev/pfin/internal/tui/components"
	"github.com/theirongolddev/pfin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogAdd
	dialogReset
)

// dialogValues receives form answers. It lives on the heap so every copy
// of App sees the same values.
type dialogValues struct {
	name    string
	confirm bool
}

func (a App) openAddDialog() (tea.Model, tea.Cmd) {
	vals := &dialogValues{}
	book := a.book
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("New item name").
			Placeholder("e.g. Piano lessons").
			Value(&vals.name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				if _, ok := book.Entry(s); ok {
					return errors.New("an item with this name already exists")
				}
				return nil
			}),
	)).WithTheme(theme.Active.Form()).WithShowHelp(false)

	return a.openDialog(dialogAdd, vals, form)
}

func (a App) openResetDialog() (tea.Model, tea.Cmd) {
	vals := &dialogValues{}
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Reset all fixed costs?").
			Description("Every amount, frequency and note will be discarded.").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&vals.confirm),
	)).WithTheme(theme.Active.Form()).WithShowHelp(false)

	return a.openDialog(dialogReset, vals, form)
}

func (a App) openDialog(kind dialogKind, vals *dialogValues, form *huh.Form) (tea.Model, tea.Cmd) {
	a.dialog = form.WithWidth(a.contentWidth() - 4)
	a.dialogKind = kind
	a.dialogVals = vals
	return a, a.dialog.Init()
}

func (a App) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return a.closeDialog(), nil
	}

	form, cmd := a.dialog.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.dialog = f
	}

	switch a.dialog.State {
	case huh.StateCompleted:
		a.commitDialog()
		return a.closeDialog(), nil
	case huh.StateAborted:
		return a.closeDialog(), nil
	}
	return a, cmd
}

func (a *App) commitDialog() {
	switch a.dialogKind {
	case dialogAdd:
		name := a.dialogVals.name
		if err := a.book.AddCustom(name); err != nil {
			if errors.Is(err, ledger.ErrDuplicateName) {
				a.flash = "An item with this name already exists"
			} else {
				a.flash = err.Error()
			}
			return
		}
		// New items are empty; show them so they can be edited right away.
		a.costs.showAll = true
		a.costs.cursor = indexOf(a.visibleNames(), name)
		a.flash = "Added " + name
	case dialogReset:
		if !a.dialogVals.confirm {
			return
		}
		a.book.ResetAll()
		a.costs.cursor = 0
		a.costs.editing = false
		a.flash = "All fixed costs reset"
	}
}

func (a App) closeDialog() App {
	a.dialog = nil
	a.dialogKind = dialogNone
	a.dialogVals = nil
	return a
}

func (a App) renderDialog(cw int) string {
	title := "Add Item"
	if a.dialogKind == dialogReset {
		title = "Reset"
	}
	return components.ContentCard(title, a.dialog.View(), cw, true)
}
