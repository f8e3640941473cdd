// File: compare.go
// Title: Comparison and Equality Operations
// Description: Implements lexicographic comparison, equality, and windowed
//              region comparison for String, each with a case-insensitive
//              variant using ASCII case folding.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with comparison operations

package istring

import (
	"strings"
)

// CompareTo performs a lexicographic three-way comparison of the code-unit
// sequences and returns -1, 0, or 1. The other operand is coerced to text.
func (s String) CompareTo(other interface{}) int {
	return strings.Compare(s.value, coerce(other))
}

// CompareToIgnoreCase is CompareTo with both operands folded to lower case
// before comparing.
func (s String) CompareToIgnoreCase(other interface{}) int {
	return strings.Compare(asciiLower(s.value), asciiLower(coerce(other)))
}

// Equals returns true if both strings have identical code-unit sequences
func (s String) Equals(other interface{}) bool {
	return s.CompareTo(other) == 0
}

// EqualsIgnoreCase returns true if the strings are equal ignoring case
func (s String) EqualsIgnoreCase(other interface{}) bool {
	return s.CompareToIgnoreCase(other) == 0
}

// RegionCompare compares the window of up to length code units starting at
// thisOffset against the window of other starting at otherOffset.
//
// Each offset is bounds-checked through Substring and fails with an
// index-out-of-bounds error under the same rules. The comparison truncates
// at length code units; a window that naturally holds fewer characters at
// the tail compares whatever is available.
func (s String) RegionCompare(thisOffset int, other interface{}, otherOffset, length int) (int, error) {
	return s.regionCompare(thisOffset, other, otherOffset, length, false)
}

// RegionCompareIgnoreCase is RegionCompare with ASCII case folding
func (s String) RegionCompareIgnoreCase(thisOffset int, other interface{}, otherOffset, length int) (int, error) {
	return s.regionCompare(thisOffset, other, otherOffset, length, true)
}

// RegionMatches returns true if the two regions compare equal
func (s String) RegionMatches(thisOffset int, other interface{}, otherOffset, length int) (bool, error) {
	cmp, err := s.RegionCompare(thisOffset, other, otherOffset, length)
	if err != nil {
		return false, err
	}
	return cmp == 0, nil
}

// RegionMatchesIgnoreCase returns true if the regions are equal ignoring case
func (s String) RegionMatchesIgnoreCase(thisOffset int, other interface{}, otherOffset, length int) (bool, error) {
	cmp, err := s.RegionCompareIgnoreCase(thisOffset, other, otherOffset, length)
	if err != nil {
		return false, err
	}
	return cmp == 0, nil
}

func (s String) regionCompare(thisOffset int, other interface{}, otherOffset, length int, ignoreCase bool) (int, error) {
	thisWindow, err := s.Substring(thisOffset)
	if err != nil {
		return 0, err
	}

	otherWindow, err := New(other).Substring(otherOffset)
	if err != nil {
		return 0, err
	}

	return boundedCompare(thisWindow.value, otherWindow.value, length, ignoreCase), nil
}

// boundedCompare compares at most n code units of a and b, strncmp-style:
// a string exhausted before n code units compares by its available prefix.
func boundedCompare(a, b string, n int, ignoreCase bool) int {
	if n < 0 {
		n = 0
	}
	if n < len(a) {
		a = a[:n]
	}
	if n < len(b) {
		b = b[:n]
	}

	if ignoreCase {
		a = asciiLower(a)
		b = asciiLower(b)
	}

	return strings.Compare(a, b)
}
