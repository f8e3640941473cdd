// File: standards.go
// Title: Standardized Error Constructors
// Description: Provides the standardized constructors and predicates for the
//              two failure kinds of the istring library (index out of bounds
//              and unsupported mutation) plus pattern and input errors, so
//              every call site produces identically shaped errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation of error standards

package errors

import (
	"fmt"

	istrerror "github.com/msto63/istring/core/error"
)

// Detail keys used by the standardized constructors
const (
	DetailIndex   = "index"
	DetailPattern = "pattern"
	DetailInput   = "input"
)

// IndexOutOfBounds creates the standardized error for an index, offset, or
// computed span that falls outside [0, length]. The offending index is
// carried as a detail for diagnostics.
func IndexOutOfBounds(operation string, index int) *istrerror.Error {
	return istrerror.Newf("index %d out of bounds in %s", index, operation).
		WithCode(istrerror.CodeIndexOutOfBounds).
		WithOperation(operation).
		WithDetail(DetailIndex, index)
}

// UnsupportedMutation creates the standardized error for any attempt to
// write or delete through indexed access on an immutable string.
func UnsupportedMutation(operation string, index int) *istrerror.Error {
	return istrerror.Newf("%s not supported on immutable string", operation).
		WithCode(istrerror.CodeUnsupportedMutation).
		WithOperation(operation).
		WithDetail(DetailIndex, index)
}

// InvalidPattern creates the standardized error for a regular expression
// that the configured engine rejected.
func InvalidPattern(operation, pattern string, cause error) *istrerror.Error {
	return istrerror.Wrap(cause, fmt.Sprintf("invalid pattern in %s", operation)).
		WithCode(istrerror.CodeInvalidPattern).
		WithOperation(operation).
		WithDetail(DetailPattern, pattern)
}

// InvalidInput creates the standardized error for an argument that is
// malformed in a way not covered by bounds checking.
func InvalidInput(operation string, input interface{}) *istrerror.Error {
	return istrerror.Newf("invalid input in %s", operation).
		WithCode(istrerror.CodeInvalidInput).
		WithOperation(operation).
		WithDetail(DetailInput, input)
}

// ConfigError creates the standardized error for configuration failures of
// the istr tool.
func ConfigError(operation, path string, cause error) *istrerror.Error {
	if cause != nil {
		return istrerror.Wrap(cause, fmt.Sprintf("configuration error in %s", operation)).
			WithCode(istrerror.CodeConfigParse).
			WithOperation(operation).
			WithDetail("path", path)
	}
	return istrerror.Newf("configuration error in %s", operation).
		WithCode(istrerror.CodeConfigInvalid).
		WithOperation(operation).
		WithDetail("path", path)
}

// IsIndexOutOfBounds reports whether err is an index-out-of-bounds error
func IsIndexOutOfBounds(err error) bool {
	return istrerror.HasCode(err, istrerror.CodeIndexOutOfBounds)
}

// IsUnsupportedMutation reports whether err is an unsupported-mutation error
func IsUnsupportedMutation(err error) bool {
	return istrerror.HasCode(err, istrerror.CodeUnsupportedMutation)
}

// IsInvalidPattern reports whether err is an invalid-pattern error
func IsInvalidPattern(err error) bool {
	return istrerror.HasCode(err, istrerror.CodeInvalidPattern)
}

// OffendingIndex returns the index carried by an index-out-of-bounds or
// unsupported-mutation error, and whether one was present.
func OffendingIndex(err error) (int, bool) {
	istrErr, ok := err.(*istrerror.Error)
	if !ok {
		return 0, false
	}
	v, ok := istrErr.Detail(DetailIndex)
	if !ok {
		return 0, false
	}
	idx, ok := v.(int)
	return idx, ok
}
