// Package clite provides the interpreter for the clite language.
//
// Package: clite
// Title: clite Interpreter Engine
// Description: clite programs arrive as a stream of (token class, lexeme)
//              pairs. The engine parses and executes them in one pass:
//              declarations first, then statements, with int to float
//              promotion as the only implicit conversion. Any grammar or
//              type violation ends the run with a single coded error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Packages:
// - token: token classes, streams and the cursor
// - value: scalar values, operators and rendering
// - symbols: the flat symbol table
// - interp: declarations, statements and expressions
//
// Usage:
//
//	engine, err := clite.NewEngine(clite.Options{Output: os.Stdout})
//	if err != nil {
//		return err
//	}
//	stream, err := token.FromPairs(classes, lexemes)
//	if err != nil {
//		return err
//	}
//	if _, err := engine.Execute(ctx, stream); err != nil {
//		fmt.Fprintln(os.Stderr, clite.Describe(err))
//	}
package clite
