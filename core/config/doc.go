// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads and validates the configuration of the
//              istr command line tool from TOML or YAML files.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial package documentation

// Package config provides configuration for the istr tool.
//
// Configuration is a typed structure loaded from a TOML or YAML file, the
// format chosen by file extension. When no explicit path is given the
// package consults the ISTR_CONFIG environment variable and then searches
// ./istring.toml, ./istring.yaml, ./configs/istring.toml, and
// ~/.config/istring/. A missing file is not an error; the tool runs on
// defaults.
//
//	cfg, err := config.Load("")
//	logger := cfg.Logger()
//
// The istring library itself takes no configuration.
package config
