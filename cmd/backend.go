package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/pfin/internal/backend"

	"github.com/spf13/cobra"
)

var (
	flagBackendAddr   string
	flagBackendRecent int
)

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Run a local stand-in for the statement-parsing backend",
	Args:  cobra.NoArgs,
	RunE:  runBackend,
}

func init() {
	backendCmd.Flags().StringVar(&flagBackendAddr, "addr", "", "Listen address (default from config)")
	backendCmd.Flags().IntVar(&flagBackendRecent, "recent", 0, "Upload receipts to retain (default from config)")
	rootCmd.AddCommand(backendCmd)
}

func runBackend(cmd *cobra.Command, _ []string) error {
	cfg := backend.Config{
		Addr:             appCfg.Backend.Addr,
		RecentUploads:    appCfg.Backend.RecentUploads,
		UploadsPerMinute: appCfg.Backend.UploadsPerMinute,
		Logger:           component("backend"),
	}
	if flagBackendAddr != "" {
		cfg.Addr = flagBackendAddr
	}
	if flagBackendRecent > 0 {
		cfg.RecentUploads = flagBackendRecent
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return backend.New(cfg).Run(ctx)
}
