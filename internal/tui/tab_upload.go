package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/pfin/internal/cli"
	"github.com/theirongolddev/pfin/internal/tui/components"
	"github.com/theirongolddev/pfin/internal/tui/theme"
	"github.com/theirongolddev/pfin/internal/upload"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// uploadDoneMsg carries the outcome of one statement upload.
type uploadDoneMsg struct {
	path   string
	result *upload.Result
	err    error
}

// uploadState tracks the upload tab.
type uploadState struct {
	input     textinput.Model
	focused   bool
	uploading bool
	spinner   spinner.Model

	file   string
	result *upload.Result
	err    string
}

func newUploadState() uploadState {
	ti := textinput.New()
	ti.Placeholder = "/path/to/statement.pdf"
	ti.CharLimit = 1024
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return uploadState{input: ti, spinner: sp}
}

func (a App) updateUploadKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "enter", "i":
		if a.uploads.uploading {
			return a, nil, true
		}
		a.uploads.focused = true
		a.uploads.input.Focus()
		return a, textinput.Blink, true
	}
	return a, nil, false
}

func (a App) updateUploadInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := expandHome(strings.TrimSpace(a.uploads.input.Value()))
		a.uploads.focused = false
		a.uploads.input.Blur()
		if path == "" {
			a.uploads.err = upload.Message(upload.ErrNoFile)
			return a, nil
		}
		a.uploads.uploading = true
		a.uploads.err = ""
		a.uploads.result = nil
		a.uploads.file = path
		return a, tea.Batch(a.uploads.spinner.Tick, uploadCmd(a.client, path))
	case "esc":
		a.uploads.focused = false
		a.uploads.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.uploads.input, cmd = a.uploads.input.Update(msg)
	return a, cmd
}

func uploadCmd(client *upload.Client, path string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.UploadFile(context.Background(), path)
		return uploadDoneMsg{path: path, result: res, err: err}
	}
}

func (a App) finishUpload(msg uploadDoneMsg) App {
	a.uploads.uploading = false
	if msg.err != nil {
		a.uploads.err = upload.Message(msg.err)
		a.uploads.result = nil
		return a
	}
	a.uploads.err = ""
	a.uploads.result = msg.result
	return a
}

// updateWidgets forwards non-key messages to animated widgets.
func (a App) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if _, ok := msg.(spinner.TickMsg); ok {
		if !a.uploads.uploading {
			return a, nil
		}
		var cmd tea.Cmd
		a.uploads.spinner, cmd = a.uploads.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	if a.costs.editing {
		a.costs.input, cmd = a.costs.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.uploads.focused {
		a.uploads.input, cmd = a.uploads.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.settings.editing {
		a.settings.input, cmd = a.settings.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a App) renderUploadTab(cw int) string {
	t := theme.Active

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)

	var form strings.Builder
	form.WriteString(muted.Render("Statement PDF: "))
	if a.uploads.focused {
		form.WriteString(a.uploads.input.View())
	} else if v := a.uploads.input.Value(); v != "" {
		form.WriteString(accent.Render(v))
	} else {
		form.WriteString(muted.Render("(none)"))
	}
	form.WriteString("\n")
	if a.client.MockMode() {
		form.WriteString(muted.Render("No backend configured: uploads return sample transactions."))
	} else {
		form.WriteString(muted.Render("Backend: " + a.client.BaseURL()))
	}
	form.WriteString("\n")
	form.WriteString(muted.Render("[Enter] choose file"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Upload Statement", form.String(), cw, a.uploads.focused))
	b.WriteString("\n")

	switch {
	case a.uploads.uploading:
		body := a.uploads.spinner.View() + muted.Render(" Uploading "+filepath.Base(a.uploads.file)+"...")
		b.WriteString(components.ContentCard("Status", body, cw, false))
	case a.uploads.err != "":
		b.WriteString(components.ContentCard("Upload failed", errStyle.Render(a.uploads.err), cw, false))
	case a.uploads.result != nil:
		title := "Transactions"
		if a.uploads.file != "" {
			title += "  " + filepath.Base(a.uploads.file)
		}
		body := strings.TrimRight(cli.RenderTransactions(a.uploads.result), "\n")
		b.WriteString(components.ContentCard(title, body, cw, false))
	}
	return b.String()
}

// expandHome resolves a leading "~/" against the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
