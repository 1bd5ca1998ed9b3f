package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear NAME",
	Short: "Reset one entry to empty",
	Args:  cobra.ExactArgs(1),
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, args []string) error {
	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	book.ClearEntry(args[0])
	fmt.Printf("  Cleared %s\n", args[0])
	return nil
}
