// File: istring.go
// Title: Immutable String Type and Constructors
// Description: Implements the String value type with its constructors and
//              factory functions. A String wraps a raw text value together
//              with its cached code-unit length; every transforming
//              operation returns a new value and nothing mutates a String
//              after construction.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with constructors

package istring

import (
	"fmt"
	"strings"

	istrerrors "github.com/msto63/istring/core/errors"
)

// String is an immutable string value. The zero value is the empty string.
//
// A String stores its text together with the code-unit count, both fixed at
// construction. Code units are bytes; the type is not grapheme-aware.
// Because no operation mutates a String, values are safe to share across
// goroutines without synchronization.
type String struct {
	value  string
	length int
}

// Empty is the empty string value
var Empty = String{}

// New creates a String from any string-like source.
//
// Accepted sources are String, *String, string, []byte, single bytes and
// runes, fmt.Stringer implementations, and anything else via its default
// formatting.
func New(source interface{}) String {
	v := coerce(source)
	return String{value: v, length: len(v)}
}

// NewSlice creates a String from the code-unit window [offset, offset+length)
// of source.
//
// It fails with an index-out-of-bounds error when offset or length is
// negative, or when the window would run past the end of the source.
func NewSlice(source interface{}, offset, length int) (String, error) {
	v := coerce(source)

	if offset < 0 {
		return Empty, istrerrors.IndexOutOfBounds("new_slice", offset)
	}
	if length < 0 {
		return Empty, istrerrors.IndexOutOfBounds("new_slice", length)
	}
	if offset > len(v)-length {
		return Empty, istrerrors.IndexOutOfBounds("new_slice", offset+length)
	}

	v = v[offset : offset+length]
	return String{value: v, length: len(v)}, nil
}

// Format creates a String from a printf-style format specification.
//
// With no arguments the format string is wrapped verbatim, so stray verbs
// in plain text do not get interpreted.
func Format(format string, args ...interface{}) String {
	if len(args) == 0 {
		return New(format)
	}
	return New(fmt.Sprintf(format, args...))
}

// FromCharCode builds a String by mapping each integer code to the
// corresponding single code unit, in argument order. Codes wrap modulo 256.
func FromCharCode(codes ...int) String {
	return FromCharCodes(codes)
}

// FromCharCodes is the sequence form of FromCharCode.
func FromCharCodes(codes []int) String {
	buf := make([]byte, len(codes))
	for i, code := range codes {
		buf[i] = byte(((code % 256) + 256) % 256)
	}
	return New(string(buf))
}

// Join concatenates elements with delimiter inserted between consecutive
// elements, preserving order. A single slice argument is expanded, so both
// Join(",", "a", "b") and Join(",", []string{"a", "b"}) work.
func Join(delimiter interface{}, elements ...interface{}) String {
	delim := coerce(delimiter)
	parts := flatten(elements)

	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = coerce(p)
	}

	return New(strings.Join(texts, delim))
}

// Length returns the code-unit count, cached at construction
func (s String) Length() int {
	return s.length
}

// IsEmpty returns true if the string has length zero
func (s String) IsEmpty() bool {
	return s.length == 0
}

// Value returns the raw underlying text value
func (s String) Value() string {
	return s.value
}

// String implements fmt.Stringer and returns the raw text value
func (s String) String() string {
	return s.value
}

// coerce converts a string-like argument to its text value
func coerce(v interface{}) string {
	switch t := v.(type) {
	case String:
		return t.value
	case *String:
		if t == nil {
			return ""
		}
		return t.value
	case string:
		return t
	case []byte:
		return string(t)
	case byte:
		return string([]byte{t})
	case rune:
		return string(t)
	case nil:
		return ""
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// flatten expands a single slice argument into its elements
func flatten(elements []interface{}) []interface{} {
	if len(elements) != 1 {
		return elements
	}

	switch t := elements[0].(type) {
	case []interface{}:
		return t
	case []string:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out
	case []String:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out
	default:
		return elements
	}
}
