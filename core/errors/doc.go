// File: doc.go
// Title: Package Documentation for errors
// Description: Package errors provides the standardized error constructors
//              and predicates used by all istring packages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial package documentation

// Package errors provides standardized error creation for istring.
//
// The library has exactly two contract-level failure kinds: an index,
// offset, or span outside the string's bounds (IndexOutOfBounds) and an
// attempted write through indexed access (UnsupportedMutation). This
// package is the single place where those errors are constructed, so
// every call site carries the same code, message shape, and diagnostic
// details. Callers classify with the Is* predicates rather than matching
// message text:
//
//	if _, err := s.CharAt(99); errors.IsIndexOutOfBounds(err) {
//		idx, _ := errors.OffendingIndex(err)
//		// handle idx
//	}
package errors
