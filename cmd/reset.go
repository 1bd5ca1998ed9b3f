package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard every entry and restore the default catalog",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagResetYes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Reset all fixed costs?").
			Description("Every amount, frequency and note will be discarded.").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed)
		if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return err
		}
		if !confirmed {
			fmt.Println("  Reset canceled.")
			return nil
		}
	}

	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	book.ResetAll()
	fmt.Printf("  Ledger reset to %d empty items.\n", book.Len())
	return nil
}
