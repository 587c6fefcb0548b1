// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
//              The CLI maps --verbose to debug and the trace command to
//              trace; diagnostics of the interpreter itself are logged at
//              warn or error.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-13 v0.2.0: Removed audit level, added off level for quiet runs
// - 2026-10-19 v0.3.0: Fatal level dropped, lookup tables, config errors

package log

import (
	"strings"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int8

const (
	// LevelTrace is the most verbose level, one entry per interpreted statement
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelOff disables all output
	LevelOff
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "off"}

// tags are fixed width so text entries line up
var levelTags = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "OFF"}

var levelAliases = map[string]Level{
	"trace": LevelTrace, "trc": LevelTrace,
	"debug": LevelDebug, "dbg": LevelDebug,
	"info": LevelInfo, "inf": LevelInfo,
	"warn": LevelWarn, "warning": LevelWarn, "wrn": LevelWarn,
	"error": LevelError, "err": LevelError,
	"off": LevelOff, "none": LevelOff, "quiet": LevelOff,
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelOff
}

func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l]
}

func (l Level) tag() string {
	if !l.valid() {
		return "???"
	}
	return levelTags[l]
}

// ShouldLog reports whether an entry at l passes a logger set to minLevel.
// Nothing passes LevelOff in either position.
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelOff || minLevel == LevelOff {
		return false
	}
	return l >= minLevel
}

// ParseLevel parses a level name or one of its short forms
func ParseLevel(name string) (Level, error) {
	if level, ok := levelAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return level, nil
	}
	return DefaultLevel(), mdwerror.Newf(mdwerror.CodeInvalidConfig, "unknown log level %q", name).
		WithDetail("value", name)
}

// DefaultLevel returns the level used when nothing is configured.
// The interpreter's own output goes to stdout, so stderr stays quiet
// unless something goes wrong.
func DefaultLevel() Level {
	return LevelWarn
}
