// Package config loads board settings: defaults, then a YAML file, then BOARD_*
// environment variables. Command-line flags are applied last by the CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Templates overrides the embedded document markup with a file.
	Templates string `yaml:"templates"`
	LogLevel  string `yaml:"logLevel"`
	// LogFile receives logs; empty discards them (the TUI owns the terminal).
	LogFile string `yaml:"logFile"`
	Theme   string `yaml:"theme"`
	Format  string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Theme:    "auto",
		Format:   "json",
	}
}

// LoadFromFile reads a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Merge copies every non-empty field of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Templates != "" {
		c.Templates = other.Templates
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.Theme != "" {
		c.Theme = other.Theme
	}
	if other.Format != "" {
		c.Format = other.Format
	}
}

// ApplyEnv overrides fields from BOARD_TEMPLATES, BOARD_LOG_LEVEL, BOARD_LOG_FILE,
// BOARD_TUI_THEME and BOARD_FORMAT.
func (c *Config) ApplyEnv(getenv func(string) string) {
	c.Merge(&Config{
		Templates: strings.TrimSpace(getenv("BOARD_TEMPLATES")),
		LogLevel:  strings.TrimSpace(getenv("BOARD_LOG_LEVEL")),
		LogFile:   strings.TrimSpace(getenv("BOARD_LOG_FILE")),
		Theme:     strings.TrimSpace(getenv("BOARD_TUI_THEME")),
		Format:    strings.TrimSpace(getenv("BOARD_FORMAT")),
	})
}

func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.Theme) {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("theme must be auto, light or dark (got %q)", c.Theme)
	}
	switch c.Format {
	case "", "json", "edn", "yaml":
	default:
		return fmt.Errorf("format must be json, edn or yaml (got %q)", c.Format)
	}
	return nil
}

// ParseLevel maps debug|info|warn|error (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level must be debug, info, warn or error (got %q)", s)
	}
}
