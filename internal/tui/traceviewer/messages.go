// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     traceviewer
// Description: Message types for async operations in the trace viewer
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package traceviewer

import (
	"time"

	"github.com/msto63/clite/foundation/clite/interp"
	"github.com/msto63/clite/internal/runner"
)

// Message types for tea.Cmd async operations

// eventsMsg carries the events recorded since the run started
type eventsMsg struct {
	events []interp.Event
}

// runDoneMsg is sent when the program finished or failed
type runDoneMsg struct {
	result *runner.Result
	err    error
}

// tickMsg polls the recorder while the program runs
type tickMsg time.Time
