// Package cmd implements the pfin CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/pfin/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:   %s\n", cfg.General.Currency)
	fmt.Printf("    Hide zero:  %v\n", cfg.General.HideZero)
	fmt.Printf("    Database:   %s\n", dbPath())
	fmt.Println()

	fmt.Println("  [Upload]")
	if cfg.Upload.APIBase != "" {
		fmt.Printf("    API base:   %s\n", cfg.Upload.APIBase)
	} else {
		fmt.Println("    API base:   not configured (mock data)")
	}
	fmt.Printf("    Use mock:   %v\n", cfg.Upload.UseMock)
	fmt.Printf("    Timeout:    %s\n", config.UploadTimeout(cfg))
	fmt.Println()

	fmt.Println("  [Backend]")
	fmt.Printf("    Address:    %s\n", cfg.Backend.Addr)
	fmt.Printf("    Recent:     %d uploads\n", cfg.Backend.RecentUploads)
	fmt.Printf("    Rate limit: %d uploads/min\n", cfg.Backend.UploadsPerMinute)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:      %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:      %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  Run `pfin setup` to reconfigure.")
	return nil
}
