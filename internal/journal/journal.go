// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     journal
// Description: Persistent record of past interpreter runs
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package journal

import (
	"context"
	"time"
)

// Status is the outcome of a run
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Mode is how a program was run
type Mode string

const (
	ModeRun   Mode = "run"
	ModeCheck Mode = "check"
	ModeTrace Mode = "trace"
)

// Run is one journal entry. It keeps run metadata and program output, never
// variable values.
type Run struct {
	ID            string            `json:"id"`
	StartedAt     time.Time         `json:"started_at"`
	Duration      time.Duration     `json:"duration"`
	Source        string            `json:"source"`
	Mode          Mode              `json:"mode"`
	Status        Status            `json:"status"`
	ErrorCode     string            `json:"error_code,omitempty"`
	ErrorSeverity string            `json:"error_severity,omitempty"`
	ErrorMessage  string            `json:"error_message,omitempty"`
	Tokens        int               `json:"tokens"`
	Statements    int               `json:"statements"`
	Prints        int               `json:"prints"`
	Iterations    int               `json:"iterations"`
	Output        string            `json:"output,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Filter defines criteria for listing runs
type Filter struct {
	Status    Status
	Mode      Mode
	Source    string
	ErrorCode string
	Since     time.Time
	Limit     int
	Offset    int
}

// Stats summarizes the journal
type Stats struct {
	Total       int64            `json:"total"`
	Sources     int64            `json:"sources"`
	ByStatus    map[string]int64 `json:"by_status"`
	ByErrorCode map[string]int64 `json:"by_error_code"`
	LastRun     time.Time        `json:"last_run,omitempty"`
	AvgDuration time.Duration    `json:"avg_duration"`
}

// Store defines the interface for run persistence
type Store interface {
	Record(ctx context.Context, run *Run) error
	Get(ctx context.Context, id string) (*Run, error)
	List(ctx context.Context, filter Filter) ([]*Run, error)
	Stats(ctx context.Context) (*Stats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Vacuum(ctx context.Context) error
	Close() error
}

// MaxOutputBytes caps the stored program output of a run
const MaxOutputBytes = 64 * 1024

func truncateOutput(s string) string {
	if len(s) <= MaxOutputBytes {
		return s
	}
	return s[:MaxOutputBytes]
}
