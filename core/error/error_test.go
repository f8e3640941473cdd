// File: error_test.go
// Title: Unit Tests for Core Error Implementation
// Description: Tests for error construction, wrapping, fluent builders,
//              code and severity propagation, and JSON marshaling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q; want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityMedium)
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() is empty; want captured frames")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("index %d out of bounds in %s", 7, "char_at")

	expected := "index 7 out of bounds in char_at"
	if err.Error() != expected {
		t.Errorf("Error() = %q; want %q", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("low level failure")
	err := Wrap(cause, "operation failed")

	if err.Error() != "operation failed: low level failure" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() does not return the cause")
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "no-op"); err != nil {
		t.Errorf("Wrap(nil, ...) = %v; want nil", err)
	}
}

func TestWrapPreservesCodeAndDetails(t *testing.T) {
	inner := New("inner").
		WithCode(CodeIndexOutOfBounds).
		WithDetail("index", 5)

	wrapped := Wrap(inner, "outer")

	if wrapped.Code() != CodeIndexOutOfBounds {
		t.Errorf("wrapped Code() = %v; want %v", wrapped.Code(), CodeIndexOutOfBounds)
	}
	if v, ok := wrapped.Detail("index"); !ok || v != 5 {
		t.Errorf("wrapped Detail(index) = %v, %v; want 5, true", v, ok)
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		name             string
		code             Code
		expectedSeverity Severity
	}{
		{"out of bounds maps low", CodeIndexOutOfBounds, SeverityLow},
		{"invalid pattern maps medium", CodeInvalidPattern, SeverityMedium},
		{"decode failed maps high", CodeDecodeFailed, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Code() != tt.code {
				t.Errorf("Code() = %v; want %v", err.Code(), tt.code)
			}
			if err.Severity() != tt.expectedSeverity {
				t.Errorf("Severity() = %v; want %v", err.Severity(), tt.expectedSeverity)
			}
		})
	}
}

func TestWithSeverityExplicit(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithOperationAndDetails(t *testing.T) {
	err := New("x").
		WithOperation("substring").
		WithDetail("begin", 1).
		WithDetails(map[string]interface{}{"end": 9})

	if err.Operation() != "substring" {
		t.Errorf("Operation() = %q; want %q", err.Operation(), "substring")
	}

	details := err.Details()
	if details["begin"] != 1 || details["end"] != 9 {
		t.Errorf("Details() = %v; want begin=1 end=9", details)
	}

	// Details returns a copy
	details["begin"] = 99
	if v, _ := err.Detail("begin"); v != 1 {
		t.Error("mutating the Details copy changed the error")
	}
}

func TestRootCause(t *testing.T) {
	root := fmt.Errorf("root")
	err := Wrap(Wrap(root, "middle"), "top")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v; want %v", err.RootCause(), root)
	}
}

func TestHasCodeGetCode(t *testing.T) {
	err := New("x").WithCode(CodeUnsupportedMutation)

	if !HasCode(err, CodeUnsupportedMutation) {
		t.Error("HasCode = false; want true")
	}
	if HasCode(err, CodeIndexOutOfBounds) {
		t.Error("HasCode matched the wrong code")
	}
	if GetCode(err) != CodeUnsupportedMutation {
		t.Errorf("GetCode = %v; want %v", GetCode(err), CodeUnsupportedMutation)
	}

	foreign := fmt.Errorf("foreign")
	if HasCode(foreign, CodeUnknown) {
		t.Error("HasCode on foreign error = true; want false")
	}
	if GetCode(foreign) != CodeUnknown {
		t.Errorf("GetCode on foreign error = %v; want %v", GetCode(foreign), CodeUnknown)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("boom").
		WithCode(CodeInvalidPattern).
		WithOperation("matches").
		WithDetail("pattern", "(bad")

	data, merr := json.Marshal(err)
	if merr != nil {
		t.Fatalf("json.Marshal failed: %v", merr)
	}

	var decoded map[string]interface{}
	if uerr := json.Unmarshal(data, &decoded); uerr != nil {
		t.Fatalf("json.Unmarshal failed: %v", uerr)
	}

	if decoded["message"] != "boom" {
		t.Errorf("message = %v; want boom", decoded["message"])
	}
	if decoded["code"] != string(CodeInvalidPattern) {
		t.Errorf("code = %v; want %v", decoded["code"], CodeInvalidPattern)
	}
	if decoded["operation"] != "matches" {
		t.Errorf("operation = %v; want matches", decoded["operation"])
	}
}
