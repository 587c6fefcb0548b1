// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              metadata attached by the interpreter.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-12 v0.2.0: Run id, errors.As lookups, interpreter codes
// - 2026-10-19 v0.3.0: Severity inheritance on wrap, stack tests removed

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeUndeclaredIdentifier, "identifier %q is not declared", "x")

	if err.Error() != `identifier "x" is not declared` {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != CodeUndeclaredIdentifier {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUndeclaredIdentifier)
	}
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap clite error",
			err:     New("original clite error").WithCode(CodeSyntax),
			message: "wrapper message",
			wantMsg: "wrapper message: original clite error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if mdwErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != mdwErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), mdwErr.Code())
				}
			}
		})
	}
}

func TestWrapKeepsDetailsAndRunID(t *testing.T) {
	inner := New("unexpected token").
		WithCode(CodeSyntax).
		WithDetail("index", 7).
		WithRunID("run-1")

	outer := Wrap(inner, "interpreting program")

	if v, ok := outer.Detail("index"); !ok || v != 7 {
		t.Errorf("Detail(index) = %v, %v, want 7, true", v, ok)
	}
	if outer.RunID() != "run-1" {
		t.Errorf("RunID() = %q, want %q", outer.RunID(), "run-1")
	}
	if outer.Message() != "interpreting program" {
		t.Errorf("Message() = %q", outer.Message())
	}
}

func TestWrapKeepsSeverityOfCodedError(t *testing.T) {
	inner := New("disk full").WithCode(CodeDatabaseError)
	outer := Wrap(Wrap(inner, "record run"), "finish run")

	if outer.Code() != CodeDatabaseError {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeDatabaseError)
	}
	if outer.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityHigh)
	}

	foreign := Wrap(errors.New("EOF"), "read stream")
	if foreign.Code() != CodeUnknown || foreign.Severity() != SeverityMedium {
		t.Errorf("foreign wrap = %v/%v, want UNKNOWN/medium", foreign.Code(), foreign.Severity())
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	if errors.Unwrap(errors.Unwrap(top)) != original {
		t.Error("two unwraps should reach the original error")
	}
}

func TestWithCode(t *testing.T) {
	err := New("test error").WithCode(CodeDatabaseError)

	if err.Code() != CodeDatabaseError {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeDatabaseError)
	}

	expectedSeverity := GetSeverityFromCode(CodeDatabaseError)
	if err.Severity() != expectedSeverity {
		t.Errorf("Severity() = %v, want %v", err.Severity(), expectedSeverity)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("test error").
		WithDetail("key1", "value1").
		WithDetail("key2", 42)

	details := err.Details()

	if len(details) != 2 {
		t.Errorf("Details() length = %d, want 2", len(details))
	}

	if details["key1"] != "value1" {
		t.Errorf("Details()[\"key1\"] = %v, want \"value1\"", details["key1"])
	}

	if details["key2"] != 42 {
		t.Errorf("Details()[\"key2\"] = %v, want 42", details["key2"])
	}

	details["key3"] = "mutated"
	if _, ok := err.Detail("key3"); ok {
		t.Error("Details() should return a copy")
	}
}

func TestWithRunID(t *testing.T) {
	runID := "8f14e45f-ea3c-4b1e-9a2d-000000000001"
	err := New("test error").WithRunID(runID)

	if err.RunID() != runID {
		t.Errorf("RunID() = %q, want %q", err.RunID(), runID)
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "clite error with matching code",
			err:  New("test").WithCode(CodeSyntax),
			code: CodeSyntax,
			want: true,
		},
		{
			name: "clite error with different code",
			err:  New("test").WithCode(CodeSyntax),
			code: CodeTypeError,
			want: false,
		},
		{
			name: "clite error behind fmt wrapping",
			err:  fmt.Errorf("run failed: %w", New("test").WithCode(CodeDivisionByZero)),
			code: CodeDivisionByZero,
			want: true,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			code: CodeSyntax,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: CodeUnknown,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "clite error",
			err:  New("test").WithCode(CodeUndeclaredIdentifier),
			want: CodeUndeclaredIdentifier,
		},
		{
			name: "wrapped clite error",
			err:  fmt.Errorf("outer: %w", New("test").WithCode(CodeUnexpectedEOF)),
			want: CodeUnexpectedEOF,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{
			name: "clite error",
			err:  New("test").WithCode(CodeInternal),
			want: SeverityCritical,
		},
		{
			name: "program error behind fmt wrapping",
			err:  fmt.Errorf("run: %w", Newf(CodeTypeError, "bad operand")),
			want: SeverityLow,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			want: SeverityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverity(tt.err); got != tt.want {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("EOF"), "test error").
		WithCode(CodeSyntax).
		WithRunID("run-1").
		WithDetail("lexeme", "while")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var result map[string]interface{}
	if jsonErr := json.Unmarshal(data, &result); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if result["message"] != "test error" {
		t.Errorf("JSON message = %v, want \"test error\"", result["message"])
	}

	if result["code"] != "SYNTAX" {
		t.Errorf("JSON code = %v, want \"SYNTAX\"", result["code"])
	}

	if result["severity"] != "low" {
		t.Errorf("JSON severity = %v, want \"low\"", result["severity"])
	}

	if result["cause"] != "EOF" {
		t.Errorf("JSON cause = %v, want \"EOF\"", result["cause"])
	}

	if result["run_id"] != "run-1" {
		t.Errorf("JSON run_id = %v, want \"run-1\"", result["run_id"])
	}

	details, ok := result["details"].(map[string]interface{})
	if !ok {
		t.Fatal("JSON details should be a map")
	}

	if details["lexeme"] != "while" {
		t.Errorf("JSON details.lexeme = %v, want \"while\"", details["lexeme"])
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrapCliteError(b *testing.B) {
	mdwErr := New("original error").WithCode(CodeSyntax)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Wrap(mdwErr, "wrapped error")
	}
}
