// File: timer.go
// Title: Performance Timer
// Description: Measures the phases of a run (loading, interpreting,
//              journaling) and logs their duration when stopped.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-13 v0.2.0: Checkpoints collected for run statistics
// - 2026-10-19 v0.3.0: Completion always logged at debug

package log

import (
	"time"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Checkpoint is a named intermediate time recorded by a Timer
type Checkpoint struct {
	Name    string
	Elapsed time.Duration
}

// Timer measures one operation. Create it with Logger.StartTimer.
type Timer struct {
	logger      *Logger
	operation   string
	start       time.Time
	fields      Fields
	stopped     bool
	checkpoints []Checkpoint
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Checkpoint records an intermediate time and logs it at trace level
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.stopped {
		return
	}

	elapsed := time.Since(t.start)
	t.checkpoints = append(t.checkpoints, Checkpoint{Name: name, Elapsed: elapsed})

	combined := t.entryFields(elapsed, "elapsed_ms")
	combined["checkpoint"] = name
	for _, f := range fields {
		f.copyInto(combined)
	}
	t.logger.log(LevelTrace, t.operation+" checkpoint: "+name, nil, combined)
}

// Checkpoints returns a copy of the checkpoints recorded so far
func (t *Timer) Checkpoints() []Checkpoint {
	return append([]Checkpoint(nil), t.checkpoints...)
}

// Stop logs the duration at debug level and returns it. A second call
// returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := time.Since(t.start)
	t.logger.log(LevelDebug, t.operation+" completed", nil, t.entryFields(elapsed, "duration_ms"))
	return elapsed
}

// StopWithError logs the failure with the elapsed time. Program errors
// stay at debug, anything else is logged as an error.
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := time.Since(t.start)
	fields := t.entryFields(elapsed, "duration_ms")
	fields["success"] = false

	level := LevelError
	if e, ok := mdwerror.As(err); ok {
		fields["error_code"] = e.Code()
		if e.Code().IsProgramError() {
			level = LevelDebug
		}
	}
	t.logger.log(level, t.operation+" failed", err, fields)
	return elapsed
}

func (t *Timer) entryFields(elapsed time.Duration, key string) Fields {
	fields := make(Fields, len(t.fields)+3)
	t.fields.copyInto(fields)
	fields["operation"] = t.operation
	fields[key] = millis(elapsed)
	return fields
}
