// File: doc.go
// Title: Package Documentation for istring
// Description: Package istring provides an immutable string value type with
//              a uniform, bounds-checked API over common text operations.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-11 v0.1.0: Initial package documentation
// - 2025-02-12 v0.1.0: Documented regex dialect dependency

// Package istring provides an immutable string value type.
//
// Overview
//
// String wraps a raw text value together with its cached code-unit length
// and exposes character access, comparison, searching, pattern matching,
// substring extraction, padding, case conversion, trimming, splitting, and
// joining behind one consistent surface. Operations that logically modify
// the string return a new value; nothing mutates a String after
// construction, so values are freely shareable across goroutines.
//
// The API replaces the scattered return conventions of free-function string
// handling with two uniform signals: searches report a missing occurrence
// as -1, and every operation that would read or slice outside [0, length]
// fails atomically with a structured index-out-of-bounds error before
// producing a result. Attempts to write through indexed access fail with a
// distinct unsupported-mutation error.
//
// Code units are bytes. Length, indexing, case folding, and reversal are
// byte-oriented; the type is not grapheme-aware and performs no encoding
// conversion.
//
// Usage
//
//	s := istring.New("Hello, World")
//	s.Length()                      // 12
//	s.IndexOf("World")              // 7
//	upper := s.ToUpperCase()        // new value, s unchanged
//	part, err := s.Substring(7, 12) // "World"
//
// String-like parameters accept another String, a plain string, []byte, or
// any fmt.Stringer; arguments are coerced to text first.
//
// Pattern operations
//
// Matches, MatchGroups, StartsWith, EndsWith, ReplaceAll, ReplaceFirst, and
// Split are backed by a regular-expression engine behind the Engine
// interface. The default engine wraps Go's regexp package, so patterns use
// RE2 syntax and replacements use its $name/$1 substitution form. The
// dialect is an external dependency of the host engine, not part of this
// package's contract; SetEngine installs a different implementation.
//
// Error handling
//
// Failures are *error.Error values from core/error with the codes
// CodeIndexOutOfBounds, CodeUnsupportedMutation, and CodeInvalidPattern.
// The core/errors package provides predicates and the OffendingIndex
// accessor for programmatic handling.
package istring
