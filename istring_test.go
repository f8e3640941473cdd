// File: istring_test.go
// Title: Unit Tests for Construction and Factories
// Description: Tests for the String constructors, slicing construction,
//              factory functions, and basic accessors. Covers coercion of
//              string-like sources and the documented bounds failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial test implementation

package istring

import (
	"testing"

	istrerrors "github.com/msto63/istring/core/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		source   interface{}
		expected string
	}{
		{"plain string", "hello", "hello"},
		{"empty string", "", ""},
		{"byte slice", []byte("bytes"), "bytes"},
		{"another String", New("wrapped"), "wrapped"},
		{"integer coercion", 42, "42"},
		{"nil source", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.source)
			if s.Value() != tt.expected {
				t.Errorf("New(%v).Value() = %q; want %q", tt.source, s.Value(), tt.expected)
			}
			if s.Length() != len(tt.expected) {
				t.Errorf("New(%v).Length() = %d; want %d", tt.source, s.Length(), len(tt.expected))
			}
		})
	}
}

func TestNewSlice(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		offset    int
		length    int
		expected  string
		wantError bool
	}{
		{"middle window", "hello", 2, 3, "llo", false},
		{"full window", "hello", 0, 5, "hello", false},
		{"empty window", "hello", 5, 0, "", false},
		{"window past end", "hello", 3, 3, "", true},
		{"negative offset", "hello", -1, 2, "", true},
		{"negative length", "hello", 0, -1, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSlice(tt.source, tt.offset, tt.length)
			if tt.wantError {
				if err == nil {
					t.Fatalf("NewSlice(%q, %d, %d) succeeded; want error", tt.source, tt.offset, tt.length)
				}
				if !istrerrors.IsIndexOutOfBounds(err) {
					t.Errorf("NewSlice(%q, %d, %d) error = %v; want index out of bounds", tt.source, tt.offset, tt.length, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSlice(%q, %d, %d) failed: %v", tt.source, tt.offset, tt.length, err)
			}
			if s.Value() != tt.expected {
				t.Errorf("NewSlice(%q, %d, %d) = %q; want %q", tt.source, tt.offset, tt.length, s.Value(), tt.expected)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{"no args verbatim", "100% done", nil, "100% done"},
		{"positional substitution", "%s is %d", []interface{}{"x", 7}, "x is 7"},
		{"single argument", "[%v]", []interface{}{true}, "[true]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Format(tt.format, tt.args...)
			if s.Value() != tt.expected {
				t.Errorf("Format(%q, %v) = %q; want %q", tt.format, tt.args, s.Value(), tt.expected)
			}
		})
	}
}

func TestFromCharCode(t *testing.T) {
	tests := []struct {
		name     string
		codes    []int
		expected string
	}{
		{"ascii codes", []int{72, 105}, "Hi"},
		{"no codes", nil, ""},
		{"code above range wraps", []int{328}, "H"},
		{"negative code wraps", []int{-184}, "H"},
		{"nul code", []int{0}, "\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromCharCode(tt.codes...); got.Value() != tt.expected {
				t.Errorf("FromCharCode(%v) = %q; want %q", tt.codes, got.Value(), tt.expected)
			}
			if got := FromCharCodes(tt.codes); got.Value() != tt.expected {
				t.Errorf("FromCharCodes(%v) = %q; want %q", tt.codes, got.Value(), tt.expected)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name      string
		delimiter interface{}
		elements  []interface{}
		expected  string
	}{
		{"variadic strings", ",", []interface{}{"a", "b", "c"}, "a,b,c"},
		{"string slice", ",", []interface{}{[]string{"a", "b", "c"}}, "a,b,c"},
		{"String slice", "-", []interface{}{[]String{New("x"), New("y")}}, "x-y"},
		{"mixed element types", " ", []interface{}{"n", 1, New("s")}, "n 1 s"},
		{"single element", ",", []interface{}{"only"}, "only"},
		{"no elements", ",", nil, ""},
		{"String delimiter", New("::"), []interface{}{"a", "b"}, "a::b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.delimiter, tt.elements...); got.Value() != tt.expected {
				t.Errorf("Join(%v, %v) = %q; want %q", tt.delimiter, tt.elements, got.Value(), tt.expected)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	var s String

	if !s.IsEmpty() {
		t.Error("zero value is not empty")
	}
	if s.Length() != 0 {
		t.Errorf("zero value Length() = %d; want 0", s.Length())
	}
	if !s.Equals(Empty) {
		t.Error("zero value does not equal Empty")
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.input).IsEmpty(); got != tt.expected {
				t.Errorf("New(%q).IsEmpty() = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStringerCoercion(t *testing.T) {
	s := New("value")

	// fmt.Stringer round trip through coercion
	if got := New(s).Value(); got != "value" {
		t.Errorf("New(New(%q)) = %q; want %q", "value", got, "value")
	}
	if s.String() != s.Value() {
		t.Errorf("String() = %q differs from Value() = %q", s.String(), s.Value())
	}
}
