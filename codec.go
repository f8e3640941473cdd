// File: codec.go
// Title: Serialization Support
// Description: Implements text, JSON, and YAML marshaling for String so
//              immutable values embed cleanly in configuration and wire
//              structures. Unmarshaling into a zero value is construction,
//              not mutation; the write-once contract is preserved.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with codecs

package istring

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	istrerror "github.com/msto63/istring/core/error"
)

// MarshalText implements encoding.TextMarshaler; TOML encoding also goes
// through this interface.
func (s String) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *String) UnmarshalText(text []byte) error {
	*s = New(string(text))
	return nil
}

// MarshalJSON implements json.Marshaler
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (s *String) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return istrerror.Wrap(err, "cannot decode JSON value as string").
			WithCode(istrerror.CodeDecodeFailed).
			WithOperation("unmarshal_json")
	}
	*s = New(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (s String) MarshalYAML() (interface{}, error) {
	return s.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return istrerror.Wrap(err, "cannot decode YAML node as string").
			WithCode(istrerror.CodeDecodeFailed).
			WithOperation("unmarshal_yaml")
	}
	*s = New(v)
	return nil
}
