package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.ExtraCapacity != 128 {
		t.Errorf("ExtraCapacity = %d, want 128", cfg.Editor.ExtraCapacity)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", cfg.Editor.TabWidth)
	}
	if !cfg.Editor.LineNumbers {
		t.Error("LineNumbers default = false, want true")
	}
	if !cfg.Editor.Welcome {
		t.Error("Welcome default = false, want true")
	}
	if got := cfg.Log.LevelOrDefault(); got != "info" {
		t.Errorf("LevelOrDefault() = %q, want %q", got, "info")
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("Load with an explicit missing path succeeded")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
extra_capacity = 64
line_numbers = false

[ui.theme]
accent = "#ff8800"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.ExtraCapacity != 64 {
		t.Errorf("ExtraCapacity = %d, want 64", cfg.Editor.ExtraCapacity)
	}
	if cfg.Editor.LineNumbers {
		t.Error("LineNumbers = true, want false from file")
	}
	// Keys the file omits keep their defaults.
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want default 4", cfg.Editor.TabWidth)
	}
	if !cfg.Editor.Welcome {
		t.Error("Welcome lost its default")
	}
	if cfg.UI.Theme.Accent != "#ff8800" {
		t.Errorf("Accent = %q, want %q", cfg.UI.Theme.Accent, "#ff8800")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[editor\nextra_capacity = ")
	if _, err := Load(path); err == nil {
		t.Fatal("Load on malformed TOML succeeded")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative extra capacity",
			mutate:  func(c *Config) { c.Editor.ExtraCapacity = -1 },
			wantErr: "extra_capacity",
		},
		{
			name:    "zero tab width",
			mutate:  func(c *Config) { c.Editor.TabWidth = 0 },
			wantErr: "tab_width",
		},
		{
			name:    "bad color",
			mutate:  func(c *Config) { c.UI.Theme.Accent = "red" },
			wantErr: "ui.theme.accent",
		},
		{
			name:    "short color",
			mutate:  func(c *Config) { c.UI.Theme.Background = "#fff" },
			wantErr: "ui.theme.background",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "chatty" },
			wantErr: "log.level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate passed an invalid config")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LACUNA_LOG_LEVEL", "trace")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "trace" {
		t.Errorf("Level = %q, want env override %q", cfg.Log.Level, "trace")
	}
}

func TestThemeOrDefault(t *testing.T) {
	theme := ThemeConfig{Accent: "#ff8800"}.OrDefault()
	if theme.Accent != "#ff8800" {
		t.Errorf("Accent = %q, want configured value kept", theme.Accent)
	}
	if theme.Background == "" || theme.Foreground == "" || theme.Dim == "" ||
		theme.Error == "" || theme.Selection == "" {
		t.Errorf("OrDefault left empty fields: %+v", theme)
	}
}
