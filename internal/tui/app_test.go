package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/pfin/internal/config"
	"github.com/theirongolddev/pfin/internal/ledger"
	"github.com/theirongolddev/pfin/internal/store"
	"github.com/theirongolddev/pfin/internal/tui/components"
	"github.com/theirongolddev/pfin/internal/upload"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type savedConfigs struct {
	calls []config.Config
	err   error
}

func (s *savedConfigs) save(cfg config.Config) error {
	s.calls = append(s.calls, cfg)
	return s.err
}

func newTestApp(t *testing.T, catalog []string, cfg config.Config) (App, *ledger.Book, *savedConfigs) {
	t.Helper()
	book := ledger.Open(store.NewMemory(), catalog, zerolog.Nop())
	saved := &savedConfigs{}
	a := NewApp(Options{Book: book, Config: cfg, SaveConfig: saved.save})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), book, saved
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		m, _ := a.Update(keyMsg(k))
		a = m.(App)
	}
	return a
}

func typeText(a App, s string) App {
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m.(App)
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
		if got := a.tabAtX(pos + 50); got != -1 {
			t.Fatalf("x past the last tab = %d, want -1", got)
		}
	}
}

func TestTabKeysSwitchTabs(t *testing.T) {
	a, _, _ := newTestApp(t, []string{"Rent"}, config.DefaultConfig())

	a = press(a, "u")
	if a.activeTab != tabUpload {
		t.Fatalf("after u activeTab = %d, want %d", a.activeTab, tabUpload)
	}
	a = press(a, "x")
	if a.activeTab != tabSettings {
		t.Fatalf("after x activeTab = %d, want %d", a.activeTab, tabSettings)
	}
	a = press(a, "f")
	if a.activeTab != tabCosts {
		t.Fatalf("after f activeTab = %d, want %d", a.activeTab, tabCosts)
	}
}

func TestEditAmountPersists(t *testing.T) {
	a, book, _ := newTestApp(t, []string{"Internet", "Rent"}, config.DefaultConfig())

	a = press(a, "j", "enter")
	if !a.costs.editing || a.costs.name != "Rent" {
		t.Fatalf("editing=%v name=%q, want editing Rent", a.costs.editing, a.costs.name)
	}
	a = typeText(a, "1200")
	a = press(a, "enter")

	if a.costs.editing {
		t.Fatal("still editing after enter")
	}
	e, _ := book.Entry("Rent")
	if e.Amount != "1200" {
		t.Fatalf("Rent amount = %q, want 1200", e.Amount)
	}
	if got := a.view.totals.ActiveCount; got != 1 {
		t.Fatalf("view ActiveCount = %d, want 1", got)
	}
}

func TestEditEscapeDiscards(t *testing.T) {
	a, book, _ := newTestApp(t, []string{"Rent"}, config.DefaultConfig())

	a = press(a, "n")
	a = typeText(a, "landlord")
	a = press(a, "esc")

	if e, _ := book.Entry("Rent"); e.Notes != "" {
		t.Fatalf("notes = %q after esc, want empty", e.Notes)
	}
}

func TestCycleFrequencyAndClear(t *testing.T) {
	a, book, _ := newTestApp(t, []string{"Rent"}, config.DefaultConfig())

	a = press(a, "r")
	if e, _ := book.Entry("Rent"); e.Frequency != ledger.Quarterly {
		t.Fatalf("frequency = %q, want quarterly", e.Frequency)
	}
	a = press(a, "r", "r")
	if e, _ := book.Entry("Rent"); e.Frequency != ledger.Monthly {
		t.Fatalf("frequency = %q after full cycle, want monthly", e.Frequency)
	}

	if err := book.SetField("Rent", ledger.FieldAmount, "500"); err != nil {
		t.Fatal(err)
	}
	a = press(a, "c")
	if e, _ := book.Entry("Rent"); e != ledger.Placeholder() {
		t.Fatalf("entry after clear = %+v", e)
	}
	if !strings.Contains(a.flash, "Rent") {
		t.Fatalf("flash = %q", a.flash)
	}
}

func TestToggleAllItems(t *testing.T) {
	a, book, _ := newTestApp(t, []string{"Gym", "Internet", "Rent"}, config.DefaultConfig())
	if err := book.SetField("Rent", ledger.FieldAmount, "900"); err != nil {
		t.Fatal(err)
	}

	if got := len(a.visibleNames()); got != 3 {
		t.Fatalf("visible with all items = %d, want 3", got)
	}
	a = press(a, "a")
	names := a.visibleNames()
	if len(names) != 1 || names[0] != "Rent" {
		t.Fatalf("visible active items = %v, want [Rent]", names)
	}
}

func TestHideZeroStartsActiveOnly(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.HideZero = true
	a, _, _ := newTestApp(t, []string{"Rent"}, cfg)

	if a.costs.showAll {
		t.Fatal("showAll should start false when hide_zero is set")
	}
	if !strings.Contains(a.View(), "No active items") {
		t.Fatal("empty active view should explain how to show all items")
	}
}

func TestAddDialog(t *testing.T) {
	a, book, _ := newTestApp(t, []string{"Rent"}, config.DefaultConfig())

	a = press(a, "+")
	if a.dialog == nil || a.dialogKind != dialogAdd {
		t.Fatal("+ should open the add dialog")
	}
	a = press(a, "esc")
	if a.dialog != nil {
		t.Fatal("esc should close the dialog")
	}

	a.dialogKind = dialogAdd
	a.dialogVals = &dialogValues{name: "Piano"}
	a.commitDialog()
	if _, ok := book.Entry("Piano"); !ok {
		t.Fatal("Piano not added")
	}
	if names := a.visibleNames(); names[a.costs.cursor] != "Piano" {
		t.Fatalf("cursor on %q, want Piano", names[a.costs.cursor])
	}

	a.dialogVals = &dialogValues{name: "Rent"}
	a.commitDialog()
	if !strings.Contains(a.flash, "already exists") {
		t.Fatalf("duplicate flash = %q", a.flash)
	}
}

func TestResetDialog(t *testing.T) {
	a, book, _ := newTestApp(t, []string{"Rent"}, config.DefaultConfig())
	if err := book.AddCustom("Piano"); err != nil {
		t.Fatal(err)
	}

	a = press(a, "R")
	if a.dialogKind != dialogReset {
		t.Fatal("R should open the reset dialog")
	}

	a.dialogVals.confirm = false
	a.commitDialog()
	if book.Len() != 2 {
		t.Fatalf("declined reset changed the ledger: len=%d", book.Len())
	}

	a.dialogVals.confirm = true
	a.commitDialog()
	if _, ok := book.Entry("Piano"); ok || book.Len() != 1 {
		t.Fatalf("reset kept custom items: len=%d", book.Len())
	}
}

func TestUploadWithoutFile(t *testing.T) {
	a, _, _ := newTestApp(t, nil, config.DefaultConfig())

	a = press(a, "u", "enter")
	if !a.uploads.focused {
		t.Fatal("enter should focus the path input")
	}
	m, cmd := a.Update(keyMsg("enter"))
	a = m.(App)
	if cmd != nil {
		t.Fatal("no upload should start without a file")
	}
	if a.uploads.err != upload.Message(upload.ErrNoFile) {
		t.Fatalf("err = %q", a.uploads.err)
	}
}

func TestUploadMockFlow(t *testing.T) {
	a, _, _ := newTestApp(t, nil, config.DefaultConfig())

	path := filepath.Join(t.TempDir(), "nov.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatal(err)
	}

	a = press(a, "u", "enter")
	a = typeText(a, path)
	m, _ := a.Update(keyMsg("enter"))
	a = m.(App)
	if !a.uploads.uploading {
		t.Fatal("upload should be in progress")
	}

	msg := uploadCmd(a.client, path)()
	m, _ = a.Update(msg)
	a = m.(App)
	if a.uploads.uploading || a.uploads.result.Empty() {
		t.Fatalf("uploading=%v result=%v", a.uploads.uploading, a.uploads.result)
	}
	if !strings.Contains(a.View(), "Trader Joe's") {
		t.Fatal("upload tab should list grouped merchants")
	}

	a = a.finishUpload(uploadDoneMsg{err: &upload.Error{Status: 500, Message: "PDF parse failed"}})
	if a.uploads.err != "PDF parse failed" || a.uploads.result != nil {
		t.Fatalf("err=%q result=%v", a.uploads.err, a.uploads.result)
	}
}

func TestSettingsToggleSaves(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Upload.APIBase = "http://127.0.0.1:8787"
	a, _, saved := newTestApp(t, nil, cfg)
	if a.client.MockMode() {
		t.Fatal("client should start in live mode")
	}

	a = press(a, "x", "j", "j", "enter")
	if !a.cfg.Upload.UseMock || !a.client.MockMode() {
		t.Fatal("use mock toggle not applied")
	}
	if len(saved.calls) != 1 || !saved.calls[0].Upload.UseMock {
		t.Fatalf("saved = %+v", saved.calls)
	}

	a = press(a, "j", "j", "enter")
	if a.cfg.Appearance.Theme != "catppuccin-mocha" {
		t.Fatalf("theme = %q, want catppuccin-mocha", a.cfg.Appearance.Theme)
	}
}

func TestSettingsEditCurrency(t *testing.T) {
	a, _, saved := newTestApp(t, nil, config.DefaultConfig())

	a = press(a, "x", "enter")
	if !a.settings.editing {
		t.Fatal("enter on currency should open the input")
	}
	a.settings.input.SetValue("$")
	a = press(a, "enter")
	if a.cfg.General.Currency != "$" || len(saved.calls) != 1 {
		t.Fatalf("currency = %q, saves = %d", a.cfg.General.Currency, len(saved.calls))
	}
}

func TestSettingsRejectsBadURL(t *testing.T) {
	a, _, saved := newTestApp(t, nil, config.DefaultConfig())
	saved.err = errors.New("unused")

	a = press(a, "x", "j", "enter")
	a.settings.input.SetValue("not a url")
	a = press(a, "enter")
	if a.cfg.Upload.APIBase != "" || len(saved.calls) != 0 {
		t.Fatalf("bad URL accepted: %q", a.cfg.Upload.APIBase)
	}
	if a.settings.saveErr == nil {
		t.Fatal("expected a validation error")
	}
}

func TestViews(t *testing.T) {
	a, _, _ := newTestApp(t, ledger.SeedCatalog(), config.DefaultConfig())

	for _, key := range []string{"f", "u", "x", "?"} {
		a = press(a, key)
		if v := a.View(); strings.TrimSpace(v) == "" {
			t.Fatalf("view after %q is empty", key)
		}
	}

	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if v := m.(App).View(); !strings.Contains(v, "too narrow") {
		t.Fatal("narrow terminal should show a warning")
	}
}

func TestFirstRunShowsSetup(t *testing.T) {
	book := ledger.Open(store.NewMemory(), nil, zerolog.Nop())
	a := NewApp(Options{Book: book, Config: config.DefaultConfig(), NeedSetup: true, SaveConfig: (&savedConfigs{}).save})

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = m.(App)
	if a.setupForm == nil {
		t.Fatal("setup form should open on first resize")
	}
	if !strings.Contains(a.View(), "Welcome to pfin") {
		t.Fatal("setup view missing welcome note")
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	v := SetupValuesFrom(cfg)
	v.Currency = " $ "
	v.APIBase = "http://localhost:8787/"
	v.Theme = "bogus"
	v.Apply(&cfg)

	if cfg.General.Currency != "$" {
		t.Errorf("currency = %q", cfg.General.Currency)
	}
	if cfg.Upload.APIBase != "http://localhost:8787" {
		t.Errorf("api base = %q", cfg.Upload.APIBase)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}

	if err := validateBaseURL("ftp://x"); err == nil {
		t.Error("ftp URL should be rejected")
	}
}
