// Package tui provides the interactive Bubble Tea dashboard for pfin.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pfin/internal/config"
	"github.com/theirongolddev/pfin/internal/ledger"
	"github.com/theirongolddev/pfin/internal/tui/components"
	"github.com/theirongolddev/pfin/internal/tui/theme"
	"github.com/theirongolddev/pfin/internal/upload"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const (
	tabCosts = iota
	tabUpload
	tabSettings
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// Options configures NewApp.
type Options struct {
	Book      *ledger.Book
	Config    config.Config
	NeedSetup bool
	// SaveConfig persists settings changes. Nil uses config.Save.
	SaveConfig func(config.Config) error
}

// ledgerView is the latest ledger state pushed by the book subscription.
// It is shared by every copy of App.
type ledgerView struct {
	entries ledger.Ledger
	totals  ledger.Totals
}

func (v *ledgerView) set(l ledger.Ledger) {
	v.entries = l
	v.totals = ledger.ComputeTotals(l)
}

// App is the root Bubble Tea model.
type App struct {
	book       *ledger.Book
	view       *ledgerView
	cfg        config.Config
	saveConfig func(config.Config) error
	client     *upload.Client

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string

	// Per-tab state
	costs    costsState
	uploads  uploadState
	settings settingsState

	// Modal add/reset forms
	dialog     *huh.Form
	dialogKind dialogKind
	dialogVals *dialogValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

// NewApp creates the dashboard model.
func NewApp(opts Options) App {
	view := &ledgerView{}
	view.set(opts.Book.Snapshot())
	opts.Book.Subscribe(view.set)

	save := opts.SaveConfig
	if save == nil {
		save = config.Save
	}
	theme.SetActive(opts.Config.Appearance.Theme)

	a := App{
		book:       opts.Book,
		view:       view,
		cfg:        opts.Config,
		saveConfig: save,
		needSetup:  opts.NeedSetup,
		costs:      newCostsState(!opts.Config.General.HideZero),
		uploads:    newUploadState(),
	}
	a.client = newClient(a.cfg)
	return a
}

// newClient builds an upload client that logs nowhere; the alt screen owns
// the terminal.
func newClient(cfg config.Config) *upload.Client {
	return upload.NewClient(upload.Options{
		BaseURL: cfg.Upload.APIBase,
		UseMock: cfg.Upload.UseMock,
		Timeout: config.UploadTimeout(cfg),
		Logger:  zerolog.Nop(),
	})
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.needSetup && a.setupForm == nil {
			return a.startSetup()
		}
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil || a.dialog != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.dialog != nil {
			return a.updateDialog(msg)
		}

		// Text inputs swallow every key while focused.
		if a.activeTab == tabCosts && a.costs.editing {
			return a.updateCostsInput(msg)
		}
		if a.activeTab == tabUpload && a.uploads.focused {
			return a.updateUploadInput(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.flash = ""

		switch a.activeTab {
		case tabCosts:
			if m, cmd, ok := a.updateCostsKeys(key); ok {
				return m, cmd
			}
		case tabUpload:
			if m, cmd, ok := a.updateUploadKeys(key); ok {
				return m, cmd
			}
		case tabSettings:
			if m, cmd, ok := a.updateSettingsKeys(key); ok {
				return m, cmd
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		switch key {
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if r := []rune(key); len(r) == 1 {
				if idx := components.TabIdxByKey(r[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case uploadDoneMsg:
		return a.finishUpload(msg), nil
	}

	// Forward everything else (cursor blinks, spinner ticks) to whatever
	// is active.
	switch {
	case a.setupForm != nil:
		return a.updateSetupForm(msg)
	case a.dialog != nil:
		return a.updateDialog(msg)
	}
	return a.updateWidgets(msg)
}

func (a App) startSetup() (tea.Model, tea.Cmd) {
	a.setupVals = SetupValuesFrom(a.cfg)
	a.setupForm = NewSetupForm(a.setupVals).
		WithWidth(a.width).
		WithHeight(a.height)
	return a, a.setupForm.Init()
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupVals.Apply(&a.cfg)
		a.applyConfig()
		if err := a.saveConfig(a.cfg); err != nil {
			a.flash = fmt.Sprintf("Could not save config: %s", err)
		} else {
			a.flash = "Setup saved"
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

// applyConfig pushes a.cfg into the theme and the upload client.
func (a *App) applyConfig() {
	theme.SetActive(a.cfg.Appearance.Theme)
	a.client = newClient(a.cfg)
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabCosts && !a.costs.editing {
			a.costs.move(-1, len(a.visibleNames()))
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabCosts && !a.costs.editing {
			a.costs.move(1, len(a.visibleNames()))
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  pfin needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"f u x", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k g G", "Move in lists"},
		}},
		{"Fixed Costs", []struct{ key, desc string }{
			{"Enter e", "Edit amount"},
			{"n", "Edit notes"},
			{"r", "Cycle frequency"},
			{"c", "Clear item"},
			{"a", "Toggle all items"},
			{"+", "Add custom item"},
			{"R", "Reset everything"},
		}},
		{"Upload", []struct{ key, desc string }{
			{"Enter i", "Choose a statement PDF"},
			{"Esc", "Cancel input"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.statusInfo(), a.flash)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.dialog != nil:
		content = a.renderDialog(cw)
	case a.activeTab == tabCosts:
		content = a.renderCostsTab(cw, contentH)
	case a.activeTab == tabUpload:
		content = a.renderUploadTab(cw)
	case a.activeTab == tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	switch {
	case a.dialog != nil:
		return "[Enter]confirm  [Esc]cancel"
	case a.activeTab == tabCosts && a.costs.editing:
		return "[Enter]save  [Esc]cancel"
	case a.activeTab == tabUpload && a.uploads.focused:
		return "[Enter]upload  [Esc]cancel"
	case a.activeTab == tabSettings && a.settings.editing:
		return "[Enter]save  [Esc]cancel"
	}
	return "[?]help  [q]uit"
}

func (a App) statusInfo() string {
	if a.client.MockMode() {
		return "mock data"
	}
	return a.client.BaseURL()
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
