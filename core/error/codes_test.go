// File: codes_test.go
// Title: Unit Tests for Error Codes and Severities
// Description: Tests for code validity, severity mapping, and string
//              conversions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package error

import (
	"testing"
)

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeIndexOutOfBounds, CodeUnsupportedMutation,
		CodeInvalidPattern, CodeInvalidFormat, CodeDecodeFailed,
		CodeConfigNotFound, CodeConfigParse, CodeConfigInvalid,
	}
	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("Code %q reported invalid", code)
		}
	}

	if Code("MADE_UP").IsValid() {
		t.Error(`Code "MADE_UP" reported valid`)
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("Severity(%d).String() = %q; want %q", int(tt.severity), got, tt.expected)
		}
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low/medium severities should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high/critical severities should alert")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code     Code
		expected Severity
	}{
		{CodeIndexOutOfBounds, SeverityLow},
		{CodeUnsupportedMutation, SeverityLow},
		{CodeInvalidPattern, SeverityMedium},
		{CodeConfigParse, SeverityHigh},
		{Code("SOMETHING_ELSE"), SeverityMedium},
	}

	for _, tt := range tests {
		if got := GetSeverityFromCode(tt.code); got != tt.expected {
			t.Errorf("GetSeverityFromCode(%q) = %v; want %v", tt.code, got, tt.expected)
		}
	}
}
