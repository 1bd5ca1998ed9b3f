package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the statement backend is reachable",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	client := newUploadClient(appCfg, false)
	if client.MockMode() {
		fmt.Println("  Mock mode: no backend configured.")
		return nil
	}
	if !client.Health(cmd.Context()) {
		return fmt.Errorf("backend at %s is not responding", client.BaseURL())
	}
	fmt.Printf("  Backend at %s is healthy.\n", client.BaseURL())
	return nil
}
