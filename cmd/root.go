package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/pfin/internal/buildinfo"
	"github.com/theirongolddev/pfin/internal/config"
	"github.com/theirongolddev/pfin/internal/ledger"
	"github.com/theirongolddev/pfin/internal/store"
	"github.com/theirongolddev/pfin/internal/upload"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagQuiet   bool
	flagVerbose bool
)

// appCfg is loaded once per invocation by the root pre-run hook.
var appCfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "pfin",
	Short:             "Personal finance fixed-cost tracker",
	Long:              "Track recurring fixed costs, see monthly totals, and parse bank statement PDFs.",
	Version:           buildinfo.String(),
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Ledger database path (\":memory:\" for a throwaway ledger)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func initRuntime(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	appCfg = cfg

	level, lerr := zerolog.ParseLevel(cfg.Log.Level)
	if lerr != nil || cfg.Log.Level == "" {
		level = zerolog.InfoLevel
	}
	switch {
	case flagVerbose:
		level = zerolog.DebugLevel
	case flagQuiet:
		level = zerolog.ErrorLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", config.Path()).Msg("using default configuration")
	}
	if lerr != nil {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, using info")
	}
	return nil
}

// component returns the global logger tagged with a component name.
func component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	return config.DBPath(appCfg)
}

// openBook opens the ledger store and loads the book. Callers must run the
// returned close func.
func openBook() (*ledger.Book, func(), error) {
	kv, err := store.Open(dbPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening ledger: %w", err)
	}
	book := ledger.Open(kv, ledger.SeedCatalog(), component("ledger"))
	return book, func() { _ = kv.Close() }, nil
}

func newUploadClient(cfg config.Config, forceMock bool) *upload.Client {
	return upload.NewClient(upload.Options{
		BaseURL: cfg.Upload.APIBase,
		UseMock: cfg.Upload.UseMock || forceMock,
		Timeout: config.UploadTimeout(cfg),
		Logger:  component("upload"),
	})
}
