// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for classifying failures of
//              the istring library. Codes enable structured error handling,
//              programmatic recovery, and consistent diagnostics across the
//              library and the istr command line tool.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with istring error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used across the istring library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// String access and slicing
	CodeIndexOutOfBounds    Code = "INDEX_OUT_OF_BOUNDS"
	CodeUnsupportedMutation Code = "UNSUPPORTED_MUTATION"

	// Pattern matching
	CodeInvalidPattern Code = "INVALID_PATTERN"

	// Formatting and conversion
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeDecodeFailed  Code = "DECODE_FAILED"

	// Configuration (istr tool)
	CodeConfigNotFound Code = "CONFIG_NOT_FOUND"
	CodeConfigParse    Code = "CONFIG_PARSE"
	CodeConfigInvalid  Code = "CONFIG_INVALID"
)

// IsValid returns true if the code is one of the defined istring codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeIndexOutOfBounds, CodeUnsupportedMutation,
		CodeInvalidPattern, CodeInvalidFormat, CodeDecodeFailed,
		CodeConfigNotFound, CodeConfigParse, CodeConfigInvalid:
		return true
	default:
		return false
	}
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
