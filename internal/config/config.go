// Package config loads and saves pfin's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all pfin configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Upload     UploadConfig     `toml:"upload"`
	Backend    BackendConfig    `toml:"backend"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds ledger display and storage preferences.
type GeneralConfig struct {
	Currency string `toml:"currency"`
	HideZero bool   `toml:"hide_zero"`
	DBPath   string `toml:"db_path,omitempty"`
}

// UploadConfig points at the statement-parsing backend.
type UploadConfig struct {
	APIBase    string `toml:"api_base,omitempty"`
	UseMock    bool   `toml:"use_mock"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// BackendConfig controls the stand-in backend served by `pfin backend`.
type BackendConfig struct {
	Addr             string `toml:"addr"`
	RecentUploads    int    `toml:"recent_uploads"`
	UploadsPerMinute int    `toml:"uploads_per_minute"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "₹",
		},
		Upload: UploadConfig{
			TimeoutSec: 60,
		},
		Backend: BackendConfig{
			Addr:             "127.0.0.1:8787",
			RecentUploads:    50,
			UploadsPerMinute: 60,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pfin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pfin")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pfin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "pfin")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory and PFIN_* variables override it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PFIN_API_BASE"); v != "" {
		cfg.Upload.APIBase = v
	}
	if v := os.Getenv("PFIN_USE_MOCK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Upload.UseMock = b
		}
	}
	if v := os.Getenv("PFIN_DB_PATH"); v != "" {
		cfg.General.DBPath = v
	}
	if v := os.Getenv("PFIN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DBPath returns the ledger database path, defaulting under DataDir.
func DBPath(cfg Config) string {
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(DataDir(), "pfin.db")
}

// UploadTimeout returns the configured upload timeout.
func UploadTimeout(cfg Config) time.Duration {
	if cfg.Upload.TimeoutSec <= 0 {
		return 60 * time.Second
	}
	return time.Duration(cfg.Upload.TimeoutSec) * time.Second
}
