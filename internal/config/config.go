// Package config loads daylist settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config holds user settings. The zero value is not valid; use Default.
type Config struct {
	LogLevel   string `toml:"log_level"`   // debug|info|warn|error
	LogFile    string `toml:"log_file"`    // empty disables logging
	Journal    string `toml:"journal"`     // sqlite DSN for the action journal
	DateLayout string `toml:"date_layout"` // Go layout used to display dates
	Animations bool   `toml:"animations"`  // shimmer on the selected task
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		Journal:    ":memory:",
		DateLayout: "02/01/2006",
		Animations: true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/daylist/config.toml, falling back to
// ~/.config. It returns "" when no home directory can be determined.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "daylist", FileName)
}

// Load reads the config at path over the defaults.
// A missing file is not an error. An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	if c.DateLayout == "" {
		return errors.New("date_layout: must not be empty")
	}
	return nil
}
