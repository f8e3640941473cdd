// File: transform.go
// Title: String Transformation Operations
// Description: Implements literal replacement with counts, case conversion,
//              trimming, concatenation, reversal, and padding. Every
//              operation returns a new String; case conversion uses the
//              byte-oriented ASCII tables matching the cached code-unit
//              length semantics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with transformations

package istring

import (
	"strings"
)

// DefaultTrimMask is the default character set stripped by the trim
// operations: ASCII whitespace including NUL and vertical tab.
const DefaultTrimMask = " \t\n\r\x00\x0B"

// Replace replaces every literal occurrence of old with new and returns the
// new value together with the number of replacements performed. An empty
// old is a no-op.
func (s String) Replace(old, new interface{}) (String, int) {
	needle := coerce(old)
	if needle == "" {
		return s, 0
	}

	count := strings.Count(s.value, needle)
	if count == 0 {
		return s, 0
	}
	return New(strings.ReplaceAll(s.value, needle, coerce(new))), count
}

// ReplaceIgnoreCase replaces every literal occurrence of old, matched
// case-insensitively, with new. The replacement text is inserted verbatim;
// only the matching folds case.
func (s String) ReplaceIgnoreCase(old, new interface{}) (String, int) {
	needle := coerce(old)
	if needle == "" {
		return s, 0
	}

	// ASCII folding preserves byte offsets, so positions found in the
	// folded haystack index directly into the original value
	haystack := asciiLower(s.value)
	needle = asciiLower(needle)

	var b strings.Builder
	repl := coerce(new)
	count := 0
	last := 0
	for {
		idx := strings.Index(haystack[last:], needle)
		if idx < 0 {
			break
		}
		pos := last + idx
		b.WriteString(s.value[last:pos])
		b.WriteString(repl)
		last = pos + len(needle)
		count++
	}

	if count == 0 {
		return s, 0
	}
	b.WriteString(s.value[last:])
	return New(b.String()), count
}

// ToLowerCase returns a copy with ASCII upper-case letters folded to lower
// case, one code unit at a time.
func (s String) ToLowerCase() String {
	return New(asciiLower(s.value))
}

// ToUpperCase returns a copy with ASCII lower-case letters folded to upper
// case, one code unit at a time.
func (s String) ToUpperCase() String {
	return New(asciiUpper(s.value))
}

// Trim strips leading and trailing characters that are members of the
// optional mask character set (not a pattern); the default mask is
// DefaultTrimMask.
func (s String) Trim(mask ...string) String {
	return New(strings.Trim(s.value, trimMask(mask)))
}

// TrimLeft strips leading mask characters
func (s String) TrimLeft(mask ...string) String {
	return New(strings.TrimLeft(s.value, trimMask(mask)))
}

// TrimRight strips trailing mask characters
func (s String) TrimRight(mask ...string) String {
	return New(strings.TrimRight(s.value, trimMask(mask)))
}

// Concat coerces each argument to text and appends in order
func (s String) Concat(parts ...interface{}) String {
	if len(parts) == 0 {
		return s
	}

	var b strings.Builder
	b.WriteString(s.value)
	for _, p := range parts {
		b.WriteString(coerce(p))
	}
	return New(b.String())
}

// Reverse returns a code-unit-reversed copy. Reversal is not grapheme-aware.
func (s String) Reverse() String {
	if s.length < 2 {
		return s
	}

	buf := make([]byte, s.length)
	for i := 0; i < s.length; i++ {
		buf[i] = s.value[s.length-1-i]
	}
	return New(string(buf))
}

// PadLeft pads the left side with repetitions of pad (default a space),
// truncated as needed, until the string reaches targetLength code units.
// A string already at or beyond targetLength is returned unchanged.
func (s String) PadLeft(targetLength int, pad ...string) String {
	padding := buildPadding(targetLength-s.length, padString(pad))
	if padding == "" {
		return s
	}
	return New(padding + s.value)
}

// PadRight pads the right side the same way
func (s String) PadRight(targetLength int, pad ...string) String {
	padding := buildPadding(targetLength-s.length, padString(pad))
	if padding == "" {
		return s
	}
	return New(s.value + padding)
}

// asciiLower folds ASCII upper-case bytes to lower case
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	buf := []byte(s)
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}
	return string(buf)
}

// asciiUpper folds ASCII lower-case bytes to upper case
func asciiUpper(s string) string {
	hasLower := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return s
	}

	buf := []byte(s)
	for i, c := range buf {
		if c >= 'a' && c <= 'z' {
			buf[i] = c - ('a' - 'A')
		}
	}
	return string(buf)
}

// trimMask resolves the optional trim mask argument
func trimMask(mask []string) string {
	if len(mask) == 0 {
		return DefaultTrimMask
	}
	return mask[0]
}

// padString resolves the optional pad argument, defaulting to a space
func padString(pad []string) string {
	if len(pad) == 0 {
		return " "
	}
	return pad[0]
}

// buildPadding repeats pad to exactly n code units; an empty result means
// no padding is needed or possible
func buildPadding(n int, pad string) string {
	if n <= 0 || pad == "" {
		return ""
	}

	repeated := strings.Repeat(pad, (n+len(pad)-1)/len(pad))
	return repeated[:n]
}
