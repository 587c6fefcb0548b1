// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, a severity and
//              free-form details. Interpreter failures carry the token
//              position and the violated rule in their details so a single
//              diagnostic line can be rendered from them.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-12 v0.2.0: Run id context, errors.As based lookups, Newf
// - 2026-10-19 v0.3.0: Stack capture and chain truncation removed; a
//                      diagnostic never needs more than the token position

package error

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is a clite error. The zero value is not usable; build one with
// New, Newf or Wrap.
type Error struct {
	message  string
	cause    error
	code     Code
	severity Severity
	details  map[string]interface{}
	runID    string
}

func build(code Code, message string, cause error) *Error {
	return &Error{
		message:  message,
		cause:    cause,
		code:     code,
		severity: GetSeverityFromCode(code),
		details:  make(map[string]interface{}),
	}
}

// New creates an error without a code
func New(message string) *Error {
	return build(CodeUnknown, message, nil)
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap adds message in front of err. A wrapped clite error hands its
// code, severity, details and run id to the wrapper.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	inner, ok := err.(*Error)
	if !ok {
		return build(CodeUnknown, message, err)
	}

	wrapped := build(inner.code, message, inner)
	wrapped.severity = inner.severity
	wrapped.runID = inner.runID
	for k, v := range inner.details {
		wrapped.details[k] = v
	}
	return wrapped
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Message returns the message of this error without its causes
func (e *Error) Message() string {
	return e.message
}

// WithCode sets the code. The severity follows the code unless it was
// changed away from the default for uncoded errors.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithRunID sets the id of the interpreter run the error belongs to
func (e *Error) WithRunID(runID string) *Error {
	e.runID = runID
	return e
}

func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Severity() Severity {
	return e.severity
}

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

func (e *Error) RunID() string {
	return e.runID
}

// MarshalJSON renders the error for JSON log entries
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"severity": e.severity.String(),
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.runID != "" {
		data["run_id"] = e.runID
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// As returns the outermost clite error in err's chain
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// HasCode reports whether the outermost clite error in the chain has code
func HasCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.code == code
}

// GetCode returns the code of err, CodeUnknown for foreign errors
func GetCode(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of err, SeverityMedium for foreign errors
func GetSeverity(err error) Severity {
	if e, ok := As(err); ok {
		return e.severity
	}
	return SeverityMedium
}
