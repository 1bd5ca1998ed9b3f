package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/pfin/internal/cli"
	"github.com/theirongolddev/pfin/internal/upload"

	"github.com/spf13/cobra"
)

var flagUploadMock bool

var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Parse a bank statement PDF into transactions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&flagUploadMock, "mock", false, "Use canned data instead of the backend")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	client := newUploadClient(appCfg, flagUploadMock)
	res, err := client.UploadFile(cmd.Context(), path)
	if err != nil {
		return errors.New(upload.Message(err))
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("STATEMENT  " + filepath.Base(path)))
	if client.MockMode() {
		fmt.Println(cli.RenderMuted("mock data, no backend configured"))
	}
	fmt.Println()
	fmt.Print(cli.RenderTransactions(res))
	fmt.Println()
	return nil
}
