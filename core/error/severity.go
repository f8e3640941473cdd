// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for istring errors. Severities guide
//              logging and alerting decisions in applications embedding the
//              library; the library itself only assigns them.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that callers commonly handle inline
	// Examples: out-of-bounds index from unvalidated input, rejected mutation
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that interrupts an operation but has
	// an obvious recovery path
	// Examples: malformed regular expression, invalid configuration value
	SeverityMedium

	// SeverityHigh indicates a serious error that points at a programming
	// mistake or broken environment
	// Examples: undecodable persisted data, missing required configuration
	SeverityHigh

	// SeverityCritical indicates an error after which the process should not
	// continue operating
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeIndexOutOfBounds, CodeUnsupportedMutation, CodeInvalidInput:
		return SeverityLow

	case CodeInvalidPattern, CodeInvalidFormat, CodeConfigInvalid:
		return SeverityMedium

	case CodeDecodeFailed, CodeConfigNotFound, CodeConfigParse, CodeInternal:
		return SeverityHigh

	default:
		return SeverityMedium
	}
}
