package cmd

import (
	"fmt"

	"github.com/theirongolddev/pfin/internal/cli"

	"github.com/spf13/cobra"
)

var flagListAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List fixed-cost entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagListAll, "all", "a", false, "Include entries without an amount")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	book, done, err := openBook()
	if err != nil {
		return err
	}
	defer done()

	entries := book.Snapshot()
	names := entries.Active()
	title := fmt.Sprintf("Active items (%d of %d)", len(names), len(entries))
	if flagListAll {
		names = entries.Names()
		title = fmt.Sprintf("All items (%d)", len(names))
	}

	fmt.Println()
	if len(names) == 0 {
		fmt.Println(cli.RenderMuted("No active fixed costs. Use --all to list every item."))
		fmt.Println()
		return nil
	}

	t := cli.LedgerTable(entries, names, appCfg.General.Currency)
	t.Title = title
	fmt.Print(cli.RenderTable(t))

	totals := book.Totals()
	fmt.Printf("\n  Total %s / month  ~%s / day\n\n",
		cli.RenderCost(cli.FormatAmount(totals.TotalMonthly, appCfg.General.Currency)),
		cli.FormatAmount(totals.DailyAverage, appCfg.General.Currency),
	)
	return nil
}
