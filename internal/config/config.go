// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package config provides configuration loading and management for toybox.
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (TOYBOX_*)
//   - ~/.toybox/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete toybox configuration.
type Config struct {
	Version string `toml:"version"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Game history configuration
	Stats StatsConfig `toml:"stats"`

	// Logging configuration
	Log LogConfig `toml:"log"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// AccentColor is a hex color ("#7D56F4") or ANSI index ("5") used
	// for the active tab and highlights.
	AccentColor string `toml:"accent_color"`
	// StartPage is the page shown at startup: "watch", "counter",
	// "password", or "game".
	StartPage string `toml:"start_page"`
	// ShowHelp shows the key help bar at the bottom of the screen.
	ShowHelp bool `toml:"show_help"`
}

// StatsConfig controls the guessing-game history store.
type StatsConfig struct {
	// Enabled turns game recording on or off.
	Enabled bool `toml:"enabled"`
	// DatabasePath is the SQLite file (empty = ~/.toybox/games.db).
	DatabasePath string `toml:"database_path"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is a zerolog level name: "debug", "info", "warn", "error".
	Level string `toml:"level"`
	// Path is the log file (empty = ~/.toybox/toybox.log).
	Path string `toml:"path"`
}

// Pages valid for UIConfig.StartPage.
var validPages = map[string]bool{
	"watch":    true,
	"counter":  true,
	"password": true,
	"game":     true,
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			AccentColor: "#7D56F4",
			StartPage:   "watch",
			ShowHelp:    true,
		},
		Stats: StatsConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the toybox configuration directory (~/.toybox).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".toybox"), nil
}

// Path returns the path of the TOML config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureDir creates the configuration directory if missing.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// LogPath resolves the effective log file path.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "toybox.log"), nil
}

// DatabasePath resolves the effective game-history database path.
func (c *Config) DatabasePath() (string, error) {
	if c.Stats.DatabasePath != "" {
		return c.Stats.DatabasePath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "games.db"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file if present, layers environment overrides on
// top, and validates the result. A missing file is not an error; a
// malformed one is.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath is Load with an explicit file location, for tests and the
// config watcher.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.normalize()
	return cfg, nil
}

// applyEnvOverrides layers TOYBOX_* environment variables over the
// file-provided values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TOYBOX_ACCENT_COLOR"); v != "" {
		c.UI.AccentColor = v
	}
	if v := os.Getenv("TOYBOX_START_PAGE"); v != "" {
		c.UI.StartPage = v
	}
	if v := os.Getenv("TOYBOX_SHOW_HELP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.ShowHelp = b
		}
	}
	if v := os.Getenv("TOYBOX_STATS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Stats.Enabled = b
		}
	}
	if v := os.Getenv("TOYBOX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// normalize clamps unknown values back to defaults rather than failing:
// a hand-edited config should degrade, not brick startup.
func (c *Config) normalize() {
	d := Default()
	if !validPages[c.UI.StartPage] {
		c.UI.StartPage = d.UI.StartPage
	}
	if c.UI.AccentColor == "" {
		c.UI.AccentColor = d.UI.AccentColor
	}
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "disabled":
	default:
		c.Log.Level = d.Log.Level
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default location with 0600
// permissions.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to an explicit location.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# toybox configuration file")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
