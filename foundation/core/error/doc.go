// Package error provides structured error handling for clite.
//
// Package: error
// Title: clite Error Handling Framework
// Description: This package implements a structured error type with codes,
//              severity and details. The interpreter reports
//              every grammar or type violation as an *Error carrying the
//              token index and lexeme, and the CLI maps the code to an exit
//              status.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Interpreter codes, exit status mapping, run ids
// - 2026-10-19 v0.3.0: Stack traces dropped
//
// Features:
// - Wrapping that keeps code, details and run id of the inner error
// - Error codes grouped into categories
// - Exit status mapping for the command line
//
// Usage:
//
//	import mdwerror "github.com/msto63/clite/foundation/core/error"
//
//	err := mdwerror.Newf(mdwerror.CodeTypeError, "cannot assign bool to int").
//		WithDetail("index", 14)
//
//	if mdwerror.HasCode(err, mdwerror.CodeTypeError) {
//		os.Exit(mdwerror.GetCode(err).ExitCode())
//	}
package error
