package cmd

import (
	"fmt"

	"github.com/theirongolddev/pfin/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly totals of your fixed costs",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	totals := book.Totals()
	currency := appCfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("FIXED COSTS  Monthly"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    cli.TotalsRows(totals, currency),
	}))

	if totals.ActiveCount == 0 {
		fmt.Println()
		fmt.Println(cli.RenderMuted("No active fixed costs yet."))
		fmt.Println(cli.RenderMuted("Run `pfin set NAME amount VALUE` to add one."))
	}
	fmt.Println()
	return nil
}
