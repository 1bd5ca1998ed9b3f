package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/pfin/internal/ledger"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [NAME]",
	Short: "Add a custom fixed-cost item",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		input := huh.NewInput().
			Title("New item name").
			Placeholder("e.g. Piano lessons").
			Value(&name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				if _, ok := book.Entry(s); ok {
					return errors.New("an item with this name already exists")
				}
				return nil
			})
		if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	if err := book.AddCustom(name); err != nil {
		switch {
		case errors.Is(err, ledger.ErrDuplicateName):
			return fmt.Errorf("%q is already in the ledger", name)
		case errors.Is(err, ledger.ErrEmptyName):
			return errors.New("item name is required")
		}
		return err
	}
	fmt.Printf("  Added %s\n", name)
	return nil
}
