// Package log provides structured logging for clite.
//
// Package: log
// Title: clite Structured Logging Framework
// Description: This package implements structured logging with contextual
//              fields, several output formats, log levels and integration
//              with the error package. Log output goes to stderr so it never
//              mixes with the output of the interpreted program on stdout.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-13 v0.2.0: Run ids, stderr default, deterministic field order
// - 2026-10-19 v0.3.0: Settings fixed at construction
//
// Features:
// - Structured logging with JSON, text, console and logfmt formats
// - Level filtering including an off level
// - Immutable loggers tagged with fields and run ids
// - Error-aware logging that picks the level from the error code
// - Timers with checkpoints for run phases
//
// Usage:
//
//	import mdwlog "github.com/msto63/clite/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatLogfmt,
//	}).WithField("component", "interp").WithRunID(runID)
//
//	timer := logger.StartTimer("interpret")
//	if err := run(); err != nil {
//		timer.StopWithError(err)
//	}
package log
