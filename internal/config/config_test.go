package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/toastd/toastd/internal/config"
)

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("loading missing config: %v", err)
	}

	if cfg.Toast.TTLSeconds != 5 {
		t.Errorf("ttl_seconds: got %d, want 5", cfg.Toast.TTLSeconds)
	}
	if cfg.Toast.MaxVisible != 5 {
		t.Errorf("max_visible: got %d, want 5", cfg.Toast.MaxVisible)
	}
	if cfg.Theme.Warn != "#e6b450" {
		t.Errorf("warn color: got %q, want %q", cfg.Theme.Warn, "#e6b450")
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(`
[toast]
ttl_seconds = 12

[theme]
error = "#cc0000"
`), 0o644)
	if err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Toast.TTLSeconds != 12 {
		t.Errorf("ttl_seconds: got %d, want 12", cfg.Toast.TTLSeconds)
	}
	// Untouched keys keep their defaults.
	if cfg.Toast.MaxVisible != 5 {
		t.Errorf("max_visible: got %d, want 5", cfg.Toast.MaxVisible)
	}
	if cfg.Theme.Error != "#cc0000" {
		t.Errorf("error color: got %q, want %q", cfg.Theme.Error, "#cc0000")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := config.LoadFile(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
