// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config is the root configuration structure.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig holds buffer and editing settings.
type EditorConfig struct {
	// ExtraCapacity is the initial gap size, in runes, given to every new
	// buffer. Larger values defer the first growth reallocation.
	ExtraCapacity int `toml:"extra_capacity"`
	// TabWidth is the number of columns a tab renders as.
	TabWidth int `toml:"tab_width"`
	// LineNumbers toggles the gutter.
	LineNumbers bool `toml:"line_numbers"`
	// Welcome seeds scratch sessions with a short sample text.
	Welcome bool `toml:"welcome"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	Theme ThemeConfig `toml:"theme"`
}

// ThemeConfig is the UI color palette. Values are #rrggbb strings; empty
// fields fall back to the built-in dark palette.
type ThemeConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
	Error      string `toml:"error"`
	Selection  string `toml:"selection"`
}

// OrDefault returns the theme with empty fields replaced by the built-in
// palette.
func (t ThemeConfig) OrDefault() ThemeConfig {
	def := ThemeConfig{
		Background: "#1e1e2e",
		Foreground: "#cdd6f4",
		Dim:        "#6c7086",
		Accent:     "#89b4fa",
		Error:      "#f38ba8",
		Selection:  "#313244",
	}
	if t.Background == "" {
		t.Background = def.Background
	}
	if t.Foreground == "" {
		t.Foreground = def.Foreground
	}
	if t.Dim == "" {
		t.Dim = def.Dim
	}
	if t.Accent == "" {
		t.Accent = def.Accent
	}
	if t.Error == "" {
		t.Error = def.Error
	}
	if t.Selection == "" {
		t.Selection = def.Selection
	}
	return t
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LevelOrDefault returns the configured zerolog level name or "info".
func (l LogConfig) LevelOrDefault() string {
	if l.Level == "" {
		return "info"
	}
	return l.Level
}

// defaults returns the configuration used when no file exists.
func defaults() *Config {
	return &Config{
		Editor: EditorConfig{
			ExtraCapacity: 128,
			TabWidth:      4,
			LineNumbers:   true,
			Welcome:       true,
		},
	}
}

// Load reads configuration from a TOML file and applies environment
// variable overrides. An empty path means <data dir>/config.toml, and a
// missing default file is not an error: the editor starts with defaults.
// An explicitly requested file must exist.
func Load(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if path == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.ExtraCapacity < 0 {
		errs = append(errs, fmt.Errorf("editor.extra_capacity=%d must not be negative", c.Editor.ExtraCapacity))
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("editor.tab_width=%d must be between 1 and 16", c.Editor.TabWidth))
	}

	for _, color := range []struct {
		field string
		value string
	}{
		{"ui.theme.background", c.UI.Theme.Background},
		{"ui.theme.foreground", c.UI.Theme.Foreground},
		{"ui.theme.dim", c.UI.Theme.Dim},
		{"ui.theme.accent", c.UI.Theme.Accent},
		{"ui.theme.error", c.UI.Theme.Error},
		{"ui.theme.selection", c.UI.Theme.Selection},
	} {
		if err := validateColor(color.field, color.value); err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := zerolog.ParseLevel(c.Log.LevelOrDefault()); err != nil {
		errs = append(errs, fmt.Errorf("log.level=%q is not a valid level", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func validateColor(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) != 7 || value[0] != '#' {
		return fmt.Errorf("%s=%q must be a #rrggbb color", field, value)
	}
	if _, err := strconv.ParseUint(value[1:], 16, 32); err != nil {
		return fmt.Errorf("%s=%q must be a #rrggbb color", field, value)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"LACUNA_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
		{"LACUNA_LOG_FILE", func(v string) {
			if v != "" {
				cfg.Log.File = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the lacuna data directory (~/.config/lacuna).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lacuna"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
