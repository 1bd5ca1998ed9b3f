package cmd

import (
	"fmt"

	"github.com/theirongolddev/pfin/internal/cli"
	"github.com/theirongolddev/pfin/internal/ledger"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the built-in list of common fixed costs",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	names := ledger.SeedCatalog()
	t := cli.Table{
		Title:    fmt.Sprintf("Default items (%d)", len(names)),
		Headers:  []string{"#", "Name"},
		LeftCols: 2,
	}
	for i, name := range names {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("%d", i+1), name})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	fmt.Println()
	return nil
}
