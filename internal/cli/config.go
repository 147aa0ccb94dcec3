package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the persistent preferences read from the YAML config file.
// Flags override config values.
type Config struct {
	// Session is the default session snapshot file path.
	Session string `yaml:"session"`
	// Grouping toggles digit grouping in printed results. Defaults to on.
	Grouping *bool `yaml:"grouping"`
}

// GlobalConfig holds the loaded configuration, set during App.Initialize.
var GlobalConfig *Config

// DefaultConfigPath returns ~/.config/gocalc/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gocalc", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file yields the zero
// config, not an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// SessionPath resolves the session file path: the -session flag wins, then
// the config file, then empty (no persistence).
func SessionPath(cfg *Config) string {
	if *GlobalFlags.Session != "" {
		return *GlobalFlags.Session
	}
	return cfg.Session
}

// GroupingEnabled resolves digit grouping: -no-group wins, then config,
// then on.
func GroupingEnabled(cfg *Config) bool {
	if *GlobalFlags.NoGroup {
		return false
	}
	if cfg.Grouping != nil {
		return *cfg.Grouping
	}
	return true
}
