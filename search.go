// File: search.go
// Title: Substring Search Operations
// Description: Implements forward and rightmost occurrence search with
//              optional start offsets and case-insensitive variants.
//              A missing occurrence is uniformly reported as -1.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with search operations

package istring

import (
	"strings"
)

// IndexOf returns the code-unit index of the first occurrence of str at or
// after the optional fromIndex (default 0), or -1 when there is none.
//
// A negative fromIndex is treated as 0; a fromIndex at or past the end of
// the string always yields -1.
func (s String) IndexOf(str interface{}, fromIndex ...int) int {
	return s.indexOf(coerce(str), optionalIndex(fromIndex), false)
}

// IndexOfIgnoreCase is IndexOf with a case-folded scan
func (s String) IndexOfIgnoreCase(str interface{}, fromIndex ...int) int {
	return s.indexOf(coerce(str), optionalIndex(fromIndex), true)
}

// LastIndexOf returns the index of the rightmost occurrence of str at or
// after the optional fromIndex, or -1 when there is none.
//
// Note the contract: the search starts at fromIndex and scans toward the
// end, reporting the rightmost match. fromIndex is not a right boundary
// the way it is in some other string APIs.
func (s String) LastIndexOf(str interface{}, fromIndex ...int) int {
	return s.lastIndexOf(coerce(str), optionalIndex(fromIndex), false)
}

// LastIndexOfIgnoreCase is LastIndexOf with a case-folded scan
func (s String) LastIndexOfIgnoreCase(str interface{}, fromIndex ...int) int {
	return s.lastIndexOf(coerce(str), optionalIndex(fromIndex), true)
}

// Contains returns true if str occurs anywhere in the string
func (s String) Contains(str interface{}) bool {
	return s.IndexOf(str) >= 0
}

// ContainsIgnoreCase returns true if str occurs anywhere, ignoring case
func (s String) ContainsIgnoreCase(str interface{}) bool {
	return s.IndexOfIgnoreCase(str) >= 0
}

func (s String) indexOf(needle string, from int, ignoreCase bool) int {
	if from < 0 {
		from = 0
	}
	if from >= s.length {
		return -1
	}

	haystack := s.value
	if ignoreCase {
		haystack = asciiLower(haystack)
		needle = asciiLower(needle)
	}

	idx := strings.Index(haystack[from:], needle)
	if idx < 0 {
		return -1
	}
	return from + idx
}

func (s String) lastIndexOf(needle string, from int, ignoreCase bool) int {
	if from < 0 {
		from = 0
	}
	if from >= s.length {
		return -1
	}

	haystack := s.value
	if ignoreCase {
		haystack = asciiLower(haystack)
		needle = asciiLower(needle)
	}

	idx := strings.LastIndex(haystack[from:], needle)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// optionalIndex resolves a trailing optional index argument, defaulting to 0
func optionalIndex(args []int) int {
	if len(args) == 0 {
		return 0
	}
	return args[0]
}
