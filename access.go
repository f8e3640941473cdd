// File: access.go
// Title: Indexed Character Access
// Description: Implements bounds-checked character access for String along
//              with the substring operation and the rejected mutation
//              entry points. All spans are code-unit (byte) oriented.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with indexed access

package istring

import (
	istrerrors "github.com/msto63/istring/core/errors"
)

// CharAt returns the single character at index.
//
// It fails with an index-out-of-bounds error when index < 0 or
// index >= Length().
func (s String) CharAt(index int) (String, error) {
	if index < 0 || index >= s.length {
		return Empty, istrerrors.IndexOutOfBounds("char_at", index)
	}
	return String{value: s.value[index : index+1], length: 1}, nil
}

// CharCodeAt returns the numeric code of the character at index; the
// bounds-check failure of CharAt propagates.
func (s String) CharCodeAt(index int) (int, error) {
	c, err := s.CharAt(index)
	if err != nil {
		return 0, err
	}
	return int(c.value[0]), nil
}

// At is the indexed-read form of CharAt
func (s String) At(index int) (String, error) {
	return s.CharAt(index)
}

// Has reports whether index addresses an existing character
func (s String) Has(index int) bool {
	return index >= 0 && index < s.length
}

// SetCharAt always fails: the string is immutable. The error is an
// unsupported-mutation error, not index-out-of-bounds, since the index is
// irrelevant to the failure cause.
func (s String) SetCharAt(index int, value interface{}) error {
	return istrerrors.UnsupportedMutation("set_char_at", index)
}

// DeleteCharAt always fails with an unsupported-mutation error
func (s String) DeleteCharAt(index int) error {
	return istrerrors.UnsupportedMutation("delete_char_at", index)
}

// Substring returns the span [begin, end) as a new String. The optional
// second argument is the exclusive end; when omitted the span runs to the
// end of the string.
//
// begin must be non-negative, end must not exceed Length(), and the span
// length must not be negative; any violation fails with an
// index-out-of-bounds error. Requesting the full span returns the receiver
// unchanged, which is indistinguishable from a fresh copy because the type
// is immutable.
func (s String) Substring(begin int, end ...int) (String, error) {
	if begin < 0 {
		return Empty, istrerrors.IndexOutOfBounds("substring", begin)
	}

	effectiveEnd := s.length
	if len(end) > 0 {
		effectiveEnd = end[0]
		if effectiveEnd > s.length {
			return Empty, istrerrors.IndexOutOfBounds("substring", effectiveEnd)
		}
	}

	if effectiveEnd-begin < 0 {
		return Empty, istrerrors.IndexOutOfBounds("substring", effectiveEnd-begin)
	}

	if begin == 0 && effectiveEnd == s.length {
		return s, nil
	}

	v := s.value[begin:effectiveEnd]
	return String{value: v, length: len(v)}, nil
}

// ToCharArray returns the characters of the string as a slice of
// single-character values, one per code unit, in order.
func (s String) ToCharArray() []String {
	chars := make([]String, s.length)
	for i := 0; i < s.length; i++ {
		chars[i] = String{value: s.value[i : i+1], length: 1}
	}
	return chars
}
