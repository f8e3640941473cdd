// File: level_test.go
// Title: Unit Tests for Log Levels
// Description: Tests for level parsing, string conversion, and validity.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q; want %q", int(tt.level), got, tt.expected)
		}
	}
}

func TestLevelShortString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "TRC"},
		{LevelDebug, "DBG"},
		{LevelInfo, "INF"},
		{LevelWarn, "WRN"},
		{LevelError, "ERR"},
		{LevelFatal, "FTL"},
		{Level(42), "UNK"},
	}

	for _, tt := range tests {
		if got := tt.level.ShortString(); got != tt.expected {
			t.Errorf("Level(%d).ShortString() = %q; want %q", int(tt.level), got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Level
		wantError bool
	}{
		{"lowercase", "debug", LevelDebug, false},
		{"uppercase", "ERROR", LevelError, false},
		{"padded", "  info  ", LevelInfo, false},
		{"warning alias", "warning", LevelWarn, false},
		{"unknown", "loud", DefaultLevel(), true},
		{"empty", "", DefaultLevel(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantError {
				if err == nil {
					t.Fatalf("ParseLevel(%q) succeeded; want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelIsValid(t *testing.T) {
	for level := LevelTrace; level <= LevelFatal; level++ {
		if !level.IsValid() {
			t.Errorf("Level %v reported invalid", level)
		}
	}
	if Level(-1).IsValid() || Level(99).IsValid() {
		t.Error("out-of-range level reported valid")
	}
}
