// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type used by the
//              istring library, combining Go's standard error interface with
//              codes, severities, and diagnostic details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial package documentation

// Package error provides structured error handling for the istring library.
//
// Every failure the library can produce is an *Error carrying a Code
// (such as CodeIndexOutOfBounds or CodeUnsupportedMutation), a Severity,
// the failing operation, and a details map with diagnostic values like the
// offending index. The type implements the standard error interface and
// supports errors.Is/errors.As through Unwrap, so callers can treat it as
// an ordinary error or inspect the structure when they need to recover
// programmatically.
//
// Errors are built fluently:
//
//	err := error.New("index 7 out of bounds").
//		WithCode(error.CodeIndexOutOfBounds).
//		WithOperation("char_at").
//		WithDetail("index", 7)
//
// Because the package shares its name with the builtin error type it is
// conventionally imported with an alias:
//
//	istrerror "github.com/msto63/istring/core/error"
package error
