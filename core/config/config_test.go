// File: config_test.go
// Title: Unit Tests for Configuration Loading
// Description: Tests for TOML and YAML loading, format detection, default
//              fallback, environment override, and validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	istrerror "github.com/msto63/istring/core/error"
	"github.com/msto63/istring/core/log"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q; want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q; want text", cfg.Log.Format)
	}
	if cfg.Defaults.PadString != " " {
		t.Errorf("Defaults.PadString = %q; want a space", cfg.Defaults.PadString)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "istring.toml", `
[log]
level = "debug"
format = "json"

[defaults]
trim_mask = "xy"
pad_string = "0"
split_limit = 4
ignore_case = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log section = %+v; want debug/json", cfg.Log)
	}
	if cfg.Defaults.TrimMask != "xy" {
		t.Errorf("TrimMask = %q; want xy", cfg.Defaults.TrimMask)
	}
	if cfg.Defaults.SplitLimit != 4 {
		t.Errorf("SplitLimit = %d; want 4", cfg.Defaults.SplitLimit)
	}
	if !cfg.Defaults.IgnoreCase {
		t.Error("IgnoreCase = false; want true")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "istring.yaml", `
log:
  level: warn
  format: text
defaults:
  pad_string: "_"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q; want warn", cfg.Log.Level)
	}
	if cfg.Defaults.PadString != "_" {
		t.Errorf("PadString = %q; want _", cfg.Defaults.PadString)
	}
	// Sections absent from the file keep their defaults
	if cfg.Defaults.TrimMask == "" {
		t.Error("TrimMask lost its default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Load of missing file succeeded; want error")
	}
	if !istrerror.HasCode(err, istrerror.CodeConfigNotFound) {
		t.Errorf("error = %v; want code %s", err, istrerror.CodeConfigNotFound)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "log = {{{")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load of invalid TOML succeeded; want error")
	}
	if !istrerror.HasCode(err, istrerror.CodeConfigParse) {
		t.Errorf("error = %v; want code %s", err, istrerror.CodeConfigParse)
	}
}

func TestLoadEmptyPathWithoutDiscovery(t *testing.T) {
	// Run in a directory with no config so discovery finds nothing
	t.Setenv(EnvConfigPath, "")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Log.Level != Default().Log.Level {
		t.Errorf("Load(\"\") did not return defaults: %+v", cfg)
	}
}

func TestDiscoverEnvOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "istring.toml", "")
	t.Setenv(EnvConfigPath, path)

	if got := Discover(); got != path {
		t.Errorf("Discover() = %q; want %q", got, path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"negative split limit", func(c *Config) { c.Defaults.SplitLimit = -1 }},
		{"empty pad string", func(c *Config) { c.Defaults.PadString = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate succeeded; want error")
			}
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"

	logger := cfg.Logger()
	if !logger.IsLevelEnabled(log.LevelDebug) {
		t.Error("logger does not honor configured level")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"istring.toml", FormatTOML},
		{"istring.yaml", FormatYAML},
		{"istring.yml", FormatYAML},
		{"istring.conf", FormatTOML},
	}

	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.expected {
			t.Errorf("detectFormat(%q) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}
