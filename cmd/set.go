package cmd

import (
	"fmt"

	"github.com/theirongolddev/pfin/internal/cli"
	"github.com/theirongolddev/pfin/internal/ledger"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set NAME FIELD VALUE",
	Short: "Set the amount, frequency or notes of an entry",
	Long: `Set one field of a fixed-cost entry. FIELD is amount, frequency or notes.
Frequency is monthly, quarterly or yearly. A name not yet in the ledger is created.`,
	Example: `  pfin set Rent amount 25000
  pfin set "Car Insurance" frequency yearly
  pfin set Internet notes "fiber, 300 Mbps"`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	name, value := args[0], args[2]
	field, err := ledger.ParseField(args[1])
	if err != nil {
		return err
	}

	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	if err := book.SetField(name, field, value); err != nil {
		return err
	}

	e, _ := book.Entry(name)
	currency := appCfg.General.Currency
	fmt.Printf("  %s: %s %s", name, cli.FormatRawAmount(e.Amount, currency), e.Frequency.Label())
	if e.IsActive() {
		fmt.Printf(" (%s / month)", cli.FormatAmount(e.MonthlyAmount(), currency))
	}
	fmt.Println()
	return nil
}
