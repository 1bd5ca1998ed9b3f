package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/pfin/internal/config"
	"github.com/theirongolddev/pfin/internal/ledger"
	"github.com/theirongolddev/pfin/internal/store"
	"github.com/theirongolddev/pfin/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	kv, err := store.Open(dbPath())
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer kv.Close()

	// The alt screen owns the terminal; log output would corrupt it.
	book := ledger.Open(kv, ledger.SeedCatalog(), zerolog.New(io.Discard))

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Book:      book,
		Config:    appCfg,
		NeedSetup: !config.Exists(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
