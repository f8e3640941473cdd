// File: config.go
// Title: Configuration for the istr Tool
// Description: Implements typed configuration loading for the istr command
//              line tool from TOML or YAML files, with format auto-detection
//              by extension, search-path discovery, environment override,
//              defaulting, and validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation with TOML/YAML loading

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	istrerror "github.com/msto63/istring/core/error"
	istrerrors "github.com/msto63/istring/core/errors"
	"github.com/msto63/istring/core/log"
)

// EnvConfigPath names the environment variable that overrides the config
// file search
const EnvConfigPath = "ISTR_CONFIG"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the istr tool configuration
type Config struct {
	Log      LogConfig      `toml:"log" yaml:"log"`
	Defaults DefaultsConfig `toml:"defaults" yaml:"defaults"`
}

// LogConfig configures the tool's logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// DefaultsConfig configures operation defaults applied when flags are not
// given on the command line
type DefaultsConfig struct {
	// TrimMask is the character set stripped by trim commands
	TrimMask string `toml:"trim_mask" yaml:"trim_mask"`

	// PadString is the padding text used by pad commands
	PadString string `toml:"pad_string" yaml:"pad_string"`

	// SplitLimit caps split results; 0 means unbounded
	SplitLimit int `toml:"split_limit" yaml:"split_limit"`

	// IgnoreCase makes search and replace commands case-insensitive
	IgnoreCase bool `toml:"ignore_case" yaml:"ignore_case"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  log.DefaultLevel().String(),
			Format: log.FormatText.String(),
		},
		Defaults: DefaultsConfig{
			TrimMask:   " \t\n\r\x00\x0B",
			PadString:  " ",
			SplitLimit: 0,
			IgnoreCase: false,
		},
	}
}

// Load loads the configuration from path. An empty path triggers discovery;
// when no file is found the defaults are returned.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = Discover()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, istrerrors.ConfigError("load", path, err).
			WithCode(istrerror.CodeConfigNotFound)
	}

	cfg := Default()
	switch detectFormat(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, istrerrors.ConfigError("parse_yaml", path, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, istrerrors.ConfigError("parse_toml", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover returns the first existing config file from the environment
// override and the standard search paths, or an empty string.
func Discover() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	candidates := []string{
		"istring.toml",
		"istring.yaml",
		filepath.Join("configs", "istring.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "istring", "istring.toml"),
			filepath.Join(home, ".config", "istring", "istring.yaml"),
		)
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Validate checks the configuration for values the tool cannot work with
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return istrerrors.ConfigError("validate", "log.level", err)
	}
	if _, err := log.ParseFormat(c.Log.Format); err != nil {
		return istrerrors.ConfigError("validate", "log.format", err)
	}
	if c.Defaults.SplitLimit < 0 {
		return istrerrors.ConfigError("validate", "defaults.split_limit", nil)
	}
	if c.Defaults.PadString == "" {
		return istrerrors.ConfigError("validate", "defaults.pad_string", nil)
	}
	return nil
}

// Logger builds a logger from the log section
func (c *Config) Logger() *log.Logger {
	level, _ := log.ParseLevel(c.Log.Level)
	format, _ := log.ParseFormat(c.Log.Format)

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Name:   "istr",
	})
}

// detectFormat picks the file format from the extension, TOML by default
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
