package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/pfin/internal/config"
	"github.com/theirongolddev/pfin/internal/tui/components"
	"github.com/theirongolddev/pfin/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldCurrency = iota
	settingsFieldAPIBase
	settingsFieldUseMock
	settingsFieldHideZero
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter", " ":
		return a.settingsActivate()
	default:
		return a, nil, false
	}
	return a, nil, true
}

// settingsActivate toggles boolean fields, cycles the theme, and opens an
// input for text fields.
func (a App) settingsActivate() (tea.Model, tea.Cmd, bool) {
	switch a.settings.cursor {
	case settingsFieldUseMock:
		a.cfg.Upload.UseMock = !a.cfg.Upload.UseMock
		a.settingsCommit()
		return a, nil, true
	case settingsFieldHideZero:
		a.cfg.General.HideZero = !a.cfg.General.HideZero
		a.settingsCommit()
		return a, nil, true
	case settingsFieldTheme:
		a.cfg.Appearance.Theme = theme.Next(a.cfg.Appearance.Theme)
		a.settingsCommit()
		return a, nil, true
	}

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldCurrency:
		ti.Placeholder = "₹"
		ti.CharLimit = 8
		ti.SetValue(a.cfg.General.Currency)
	case settingsFieldAPIBase:
		ti.Placeholder = "http://127.0.0.1:8787 (empty for sample data)"
		ti.SetValue(a.cfg.Upload.APIBase)
	}
	ti.Focus()

	a.settings.editing = true
	a.settings.saved = false
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd(), true
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val := strings.TrimSpace(a.settings.input.Value())
		switch a.settings.cursor {
		case settingsFieldCurrency:
			if val == "" {
				a.settings.editing = false
				return a, nil
			}
			a.cfg.General.Currency = val
		case settingsFieldAPIBase:
			if err := validateBaseURL(val); err != nil {
				a.settings.saveErr = err
				a.settings.editing = false
				return a, nil
			}
			a.cfg.Upload.APIBase = strings.TrimRight(val, "/")
		}
		a.settings.editing = false
		a.settingsCommit()
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsCommit applies and saves a.cfg.
func (a *App) settingsCommit() {
	a.applyConfig()
	a.settings.saveErr = a.saveConfig(a.cfg)
	a.settings.saved = a.settings.saveErr == nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	apiBase := cfg.Upload.APIBase
	if apiBase == "" {
		apiBase = "(not set, sample data)"
	}

	fields := []struct{ label, value string }{
		{"Currency", cfg.General.Currency},
		{"Backend URL", apiBase},
		{"Use Sample Data", strconv.FormatBool(cfg.Upload.UseMock)},
		{"Hide Empty Items", strconv.FormatBool(cfg.General.HideZero)},
		{"Theme", cfg.Appearance.Theme},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit / toggle  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Items tracked:   ") + valueStyle.Render(strconv.Itoa(len(a.view.entries))) + "\n")
	infoBody.WriteString(labelStyle.Render("Upload timeout:  ") + valueStyle.Render(config.UploadTimeout(cfg).String()) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw, true))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw, false))
	return b.String()
}
