// File: pattern.go
// Title: Regular Expression Operations
// Description: Implements the pattern-backed operations of String (match,
//              anchored prefix/suffix tests, regex replace, and split) on
//              top of an injectable Engine so the operations stay testable
//              independent of a specific regex dialect. The default engine
//              wraps Go's regexp package and therefore speaks RE2 syntax;
//              that dialect is the library's one external dependency.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with regex operations

package istring

import (
	"regexp"
	"strings"
	"sync"

	istrerrors "github.com/msto63/istring/core/errors"
)

// Pattern is a compiled regular expression as seen by String operations
type Pattern interface {
	// Match reports whether the pattern matches anywhere in s
	Match(s string) bool

	// FindSubmatch returns the leftmost match and its capture groups
	// (index 0 is the whole match), or nil when there is no match
	FindSubmatch(s string) []string

	// ReplaceAllN replaces up to n matches in src with repl, which may
	// reference capture groups in the engine's substitution syntax.
	// n < 0 means unbounded. Returns the result and the replacement count.
	ReplaceAllN(src, repl string, n int) (string, int)

	// Split splits s around matches of the pattern. n > 0 caps the number
	// of fragments, the final fragment holding the unsplit remainder;
	// n <= 0 means unbounded.
	Split(s string, n int) []string
}

// Engine compiles patterns and quotes literal text for anchored matching
type Engine interface {
	Compile(pattern string, ignoreCase bool) (Pattern, error)
	Quote(literal string) string
}

var (
	engineMu      sync.RWMutex
	currentEngine Engine = goEngine{}
)

// SetEngine replaces the regex engine used by all pattern operations.
// Passing nil restores the default Go regexp engine.
func SetEngine(e Engine) {
	engineMu.Lock()
	defer engineMu.Unlock()
	if e == nil {
		e = goEngine{}
	}
	currentEngine = e
}

// CurrentEngine returns the regex engine in use
func CurrentEngine() Engine {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return currentEngine
}

// Matches returns true if pattern matches anywhere in the string. A pattern
// the engine rejects fails with an invalid-pattern error.
func (s String) Matches(pattern interface{}) (bool, error) {
	p, err := compilePattern("matches", coerce(pattern), false)
	if err != nil {
		return false, err
	}
	return p.Match(s.value), nil
}

// MatchGroups returns the match and its capture groups, each wrapped as a
// String, in match order with group 0 the whole match. It returns nil when
// the pattern does not match.
func (s String) MatchGroups(pattern interface{}) ([]String, error) {
	p, err := compilePattern("match_groups", coerce(pattern), false)
	if err != nil {
		return nil, err
	}

	groups := p.FindSubmatch(s.value)
	if groups == nil {
		return nil, nil
	}

	wrapped := make([]String, len(groups))
	for i, g := range groups {
		wrapped[i] = New(g)
	}
	return wrapped, nil
}

// StartsWith returns true if the string begins with prefix at the optional
// fromIndex (default 0). The prefix is literal text, not a pattern.
//
// The test anchors the escaped prefix against Substring(fromIndex), so an
// invalid fromIndex fails with the same index-out-of-bounds error as
// Substring.
func (s String) StartsWith(prefix interface{}, fromIndex ...int) (bool, error) {
	return s.startsWith(prefix, optionalIndex(fromIndex), false)
}

// StartsWithIgnoreCase is StartsWith with case-insensitive matching
func (s String) StartsWithIgnoreCase(prefix interface{}, fromIndex ...int) (bool, error) {
	return s.startsWith(prefix, optionalIndex(fromIndex), true)
}

// EndsWith returns true if the string ends with suffix, treated as literal
// text.
func (s String) EndsWith(suffix interface{}) (bool, error) {
	return s.endsWith(suffix, false)
}

// EndsWithIgnoreCase is EndsWith with case-insensitive matching
func (s String) EndsWithIgnoreCase(suffix interface{}) (bool, error) {
	return s.endsWith(suffix, true)
}

// ReplaceAll replaces every match of pattern with repl and returns the new
// value together with the replacement count. repl may reference capture
// groups in the engine's substitution syntax.
func (s String) ReplaceAll(pattern, repl interface{}) (String, int, error) {
	return s.ReplaceAllN(pattern, repl, -1)
}

// ReplaceAllN replaces up to limit matches of pattern with repl. A negative
// limit means unbounded.
func (s String) ReplaceAllN(pattern, repl interface{}, limit int) (String, int, error) {
	p, err := compilePattern("replace_all", coerce(pattern), false)
	if err != nil {
		return s, 0, err
	}

	result, count := p.ReplaceAllN(s.value, coerce(repl), limit)
	return New(result), count, nil
}

// ReplaceFirst replaces the first match of pattern with repl
func (s String) ReplaceFirst(pattern, repl interface{}) (String, int, error) {
	return s.ReplaceAllN(pattern, repl, 1)
}

// Split splits the string around every match of pattern, each fragment
// wrapped as a String, in original order.
func (s String) Split(pattern interface{}) ([]String, error) {
	return s.SplitN(pattern, -1)
}

// SplitN splits around matches of pattern into at most limit fragments;
// when the limit is reached the final fragment contains the unsplit
// remainder. A limit <= 0 means unbounded.
func (s String) SplitN(pattern interface{}, limit int) ([]String, error) {
	p, err := compilePattern("split", coerce(pattern), false)
	if err != nil {
		return nil, err
	}

	fragments := p.Split(s.value, limit)
	wrapped := make([]String, len(fragments))
	for i, f := range fragments {
		wrapped[i] = New(f)
	}
	return wrapped, nil
}

func (s String) startsWith(prefix interface{}, from int, ignoreCase bool) (bool, error) {
	window, err := s.Substring(from)
	if err != nil {
		return false, err
	}

	engine := CurrentEngine()
	p, err := compilePattern("starts_with", "^"+engine.Quote(coerce(prefix)), ignoreCase)
	if err != nil {
		return false, err
	}
	return p.Match(window.value), nil
}

func (s String) endsWith(suffix interface{}, ignoreCase bool) (bool, error) {
	engine := CurrentEngine()
	p, err := compilePattern("ends_with", engine.Quote(coerce(suffix))+"$", ignoreCase)
	if err != nil {
		return false, err
	}
	return p.Match(s.value), nil
}

// compilePattern compiles through the current engine and standardizes the
// failure as an invalid-pattern error
func compilePattern(operation, pattern string, ignoreCase bool) (Pattern, error) {
	p, err := CurrentEngine().Compile(pattern, ignoreCase)
	if err != nil {
		return nil, istrerrors.InvalidPattern(operation, pattern, err)
	}
	return p, nil
}

// goEngine is the default Engine backed by the standard regexp package
type goEngine struct{}

func (goEngine) Compile(pattern string, ignoreCase bool) (Pattern, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return goPattern{re: re}, nil
}

func (goEngine) Quote(literal string) string {
	return regexp.QuoteMeta(literal)
}

// goPattern adapts *regexp.Regexp to the Pattern interface
type goPattern struct {
	re *regexp.Regexp
}

func (p goPattern) Match(s string) bool {
	return p.re.MatchString(s)
}

func (p goPattern) FindSubmatch(s string) []string {
	return p.re.FindStringSubmatch(s)
}

func (p goPattern) ReplaceAllN(src, repl string, n int) (string, int) {
	matches := p.re.FindAllStringSubmatchIndex(src, n)
	if len(matches) == 0 {
		return src, 0
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(src[last:m[0]])
		b.Write(p.re.ExpandString(nil, repl, src, m))
		last = m[1]
	}
	b.WriteString(src[last:])

	return b.String(), len(matches)
}

func (p goPattern) Split(s string, n int) []string {
	if n <= 0 {
		n = -1
	}
	return p.re.Split(s, n)
}
