// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the error handling system as the
//              interpreter and the CLI use it.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-12 v0.2.0: Interpreter oriented examples
// - 2026-10-19 v0.3.0: Wrap example keeps the inner code

package error

import (
	"fmt"
	"os"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("expected ';' but found 'print'").
		WithCode(CodeSyntax).
		WithDetail("index", 12).
		WithDetail("lexeme", "print")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: expected ';' but found 'print'
	// Code: SYNTAX
	// Severity: low
}

// ExampleWrap shows a foreign error gaining a code, and a clite error
// keeping its own through a second wrap
func ExampleWrap() {
	_, openErr := os.Open("/nonexistent/program.tok")

	err := Wrap(openErr, "cannot read token stream").
		WithCode(CodeNotFound).
		WithDetail("path", "/nonexistent/program.tok")
	outer := Wrap(err, "run")

	fmt.Println("Code:", outer.Code())
	fmt.Println("Exit:", outer.Code().ExitCode())
	path, _ := outer.Detail("path")
	fmt.Println("Path:", path)

	// Output:
	// Code: NOT_FOUND
	// Exit: 2
	// Path: /nonexistent/program.tok
}

// ExampleGetCode demonstrates mapping an error to a process exit status
func ExampleGetCode() {
	err := fmt.Errorf("run failed: %w", Newf(CodeDivisionByZero, "division by zero"))

	code := GetCode(err)
	fmt.Println(code, code.Category(), code.ExitCode())

	// Output:
	// DIVISION_BY_ZERO runtime 1
}
