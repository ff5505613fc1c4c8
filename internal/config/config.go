package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Toast ToastConfig `toml:"toast"`
	Theme ThemeConfig `toml:"theme"`
}

type ToastConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
	MaxVisible int `toml:"max_visible"`
}

type ThemeConfig struct {
	Info  string `toml:"info"`
	Warn  string `toml:"warn"`
	Error string `toml:"error"`
	Text  string `toml:"text"`
	Gauge string `toml:"gauge"`
}

// Load reads ~/.toastd/config.toml, falling back to defaults when the file
// or the home directory is missing.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaults(), nil
	}
	return LoadFile(filepath.Join(home, ".toastd", "config.toml"))
}

// LoadFile reads a specific config file, falling back to defaults when it
// does not exist. Values absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := defaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Toast: ToastConfig{
			TTLSeconds: 5,
			MaxVisible: 5,
		},
		Theme: ThemeConfig{
			Info:  "#8be9fd",
			Warn:  "#e6b450",
			Error: "#ff5555",
			Text:  "#d4d4d4",
			Gauge: "#4a9a8a",
		},
	}
}
