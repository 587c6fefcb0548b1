// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across clite. Program errors
//              (grammar and type violations detected while interpreting a
//              token stream) are separated from input, configuration and
//              storage errors so the CLI can map them to exit statuses.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Replaced platform codes with interpreter codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Grammar violations
	CodeSyntax              Code = "SYNTAX"
	CodeUnexpectedEOF       Code = "UNEXPECTED_END_OF_STREAM"
	CodeDuplicateIdentifier Code = "DUPLICATE_IDENTIFIER"

	// Type and evaluation violations
	CodeUndeclaredIdentifier Code = "UNDECLARED_IDENTIFIER"
	CodeTypeError            Code = "TYPE_ERROR"
	CodeInvalidOperandType   Code = "INVALID_OPERAND_TYPE"
	CodeUninitializedValue   Code = "UNINITIALIZED_VALUE"
	CodeDivisionByZero       Code = "DIVISION_BY_ZERO"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeSyntax, CodeUnexpectedEOF, CodeDuplicateIdentifier,
		CodeUndeclaredIdentifier, CodeTypeError, CodeInvalidOperandType,
		CodeUninitializedValue, CodeDivisionByZero,
		CodeConfigError, CodeInvalidConfig,
		CodeDatabaseError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeUnexpectedEOF:
		return "syntax"
	case CodeDuplicateIdentifier, CodeUndeclaredIdentifier, CodeTypeError, CodeInvalidOperandType:
		return "semantic"
	case CodeUninitializedValue, CodeDivisionByZero, CodeCanceled:
		return "runtime"
	case CodeNotFound, CodeInvalidInput:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeDatabaseError:
		return "storage"
	default:
		return "generic"
	}
}

// IsProgramError reports whether the code describes a violation inside the
// interpreted program rather than a failure of its environment.
func (c Code) IsProgramError() bool {
	switch c.Category() {
	case "syntax", "semantic", "runtime":
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit status for this error code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "syntax", "semantic", "runtime":
		return 1
	case "input", "configuration":
		return 2
	default:
		return 3
	}
}
