package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/pfin/internal/ledger"
	"github.com/theirongolddev/pfin/internal/store"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the saved ledger as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	kv, err := store.Open(dbPath())
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer kv.Close()

	return writeExport(os.Stdout, os.Stderr, kv)
}

// writeExport prints the stored ledger JSON to out and when it was last saved to info.
func writeExport(out, info io.Writer, kv *store.SQLite) error {
	raw, ok, err := kv.Get(ledger.StorageKey)
	if err != nil {
		return fmt.Errorf("reading ledger: %w", err)
	}
	if !ok {
		fmt.Fprintln(info, "  Nothing saved yet.")
		return nil
	}

	if at, ok, err := kv.UpdatedAt(ledger.StorageKey); err == nil && ok {
		fmt.Fprintf(info, "  Last saved %s\n", at.Local().Format(time.DateTime))
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		// Corrupt values are printed as stored.
		fmt.Fprintln(out, raw)
		return nil
	}
	fmt.Fprintln(out, buf.String())
	return nil
}
