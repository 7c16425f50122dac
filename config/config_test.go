package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	c := DefaultConfig
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.LogLevel() != zerolog.InfoLevel {
		t.Errorf("LogLevel = %v, want info", c.LogLevel())
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"theme": {"show_candidates": true, "symbols": {"black": 66}}, "log": {"level": "debug"}}`)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !c.Theme.ShowCandidates {
		t.Error("ShowCandidates = false, want true")
	}
	if c.Theme.Symbols.BlackDisc != 'B' {
		t.Errorf("BlackDisc = %q, want 'B'", c.Theme.Symbols.BlackDisc)
	}
	if c.Theme.Symbols.WhiteDisc != DefaultTheme.Symbols.WhiteDisc {
		t.Errorf("WhiteDisc = %q, want default %q", c.Theme.Symbols.WhiteDisc, DefaultTheme.Symbols.WhiteDisc)
	}
	if c.LogLevel() != zerolog.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", c.LogLevel())
	}
	if c.Log.File != "debug.log" {
		t.Errorf("Log.File = %q, want default", c.Log.File)
	}
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("REVERSI_LOG_LEVEL", "warn")
	t.Setenv("REVERSI_SHOW_LEGAL_MOVES", "false")
	path := writeTempConfig(t, `{"log": {"level": "debug"}}`)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.LogLevel() != zerolog.WarnLevel {
		t.Errorf("LogLevel = %v, want warn", c.LogLevel())
	}
	if c.Theme.ShowLegalMoves {
		t.Error("ShowLegalMoves = true, want false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"control character symbol", func(c *Config) { c.Theme.Symbols.Empty = '\t' }},
		{"C1 control symbol", func(c *Config) { c.Theme.Symbols.Legal = 130 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log file with directory", func(c *Config) { c.Log.File = "../escape.log" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.mutate(&c)
			err := c.Validate()
			var invalid *InvalidConfig
			if !errors.As(err, &invalid) {
				t.Errorf("Validate() = %v, want *InvalidConfig", err)
			}
		})
	}
}

func TestLoadFileRejectsBadJSON(t *testing.T) {
	path := writeTempConfig(t, `{"theme": `)
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}
