package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{"PFIN_API_BASE", "PFIN_USE_MOCK", "PFIN_DB_PATH", "PFIN_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	// Keep a stray .env in the package dir from leaking into tests.
	t.Chdir(dir)
	return dir
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	withConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Fatalf("Currency = %q, want ₹", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Fatal("Exists() = true before any Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withConfigHome(t)

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.General.HideZero = true
	cfg.Upload.APIBase = "http://localhost:5000"
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config perm = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadParseError(t *testing.T) {
	withConfigHome(t)

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\ncurrency ="), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load on malformed TOML returned nil error")
	}
}

func TestEnvOverrides(t *testing.T) {
	withConfigHome(t)
	t.Setenv("PFIN_API_BASE", "http://parser:9000")
	t.Setenv("PFIN_USE_MOCK", "true")
	t.Setenv("PFIN_DB_PATH", "/tmp/x.db")
	t.Setenv("PFIN_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Upload.APIBase != "http://parser:9000" {
		t.Fatalf("APIBase = %q", cfg.Upload.APIBase)
	}
	if !cfg.Upload.UseMock {
		t.Fatal("UseMock = false, want true")
	}
	if DBPath(cfg) != "/tmp/x.db" {
		t.Fatalf("DBPath = %q, want /tmp/x.db", DBPath(cfg))
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestDotEnvLoaded(t *testing.T) {
	dir := withConfigHome(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PFIN_API_BASE=http://from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set.
	if err := os.Unsetenv("PFIN_API_BASE"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("PFIN_API_BASE") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Upload.APIBase != "http://from-dotenv" {
		t.Fatalf("APIBase = %q, want http://from-dotenv", cfg.Upload.APIBase)
	}
}

func TestDefaultPaths(t *testing.T) {
	dir := withConfigHome(t)

	if want := filepath.Join(dir, "data", "pfin", "pfin.db"); DBPath(DefaultConfig()) != want {
		t.Fatalf("DBPath = %q, want %q", DBPath(DefaultConfig()), want)
	}
	if UploadTimeout(Config{}) != 60*time.Second {
		t.Fatalf("UploadTimeout(zero) = %v, want 60s", UploadTimeout(Config{}))
	}
}
