// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry handed to a formatter: level, message,
//              the run it belongs to and its fields.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-13 v0.2.0: Run id replaces request, user and correlation ids
// - 2026-10-19 v0.3.0: Caller as file:line, field helpers removed

package log

import (
	"sort"
	"time"
)

// Fields are the key-value pairs of a structured entry
type Fields map[string]interface{}

// sorted returns the keys in sorted order, so two runs diff line by line
func (f Fields) sorted() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f Fields) copyInto(dst Fields) {
	for k, v := range f {
		dst[k] = v
	}
}

// Entry is a single log record
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Logger  string

	// RunID identifies the interpreter run that produced the entry
	RunID string

	// Caller is "file.go:line" when the logger records callers
	Caller string

	Fields Fields
	Err    error
}
