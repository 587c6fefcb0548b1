// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual fields, several output formats and
//              integration with the error system. Loggers are immutable;
//              every With* call returns a tagged copy.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-13 v0.2.0: Run id context, stderr default, async mode removed
// - 2026-10-19 v0.3.0: Settings fixed at construction, fatal level removed

package log

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Logger writes structured entries. Level, format and output are fixed
// when the logger is built; derived loggers only add context.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	caller    bool

	fields Fields
	runID  string

	// shared by a logger and everything derived from it, so entries
	// written to the same output never interleave
	writeMu *sync.Mutex
}

// Config holds the settings of NewWithConfig
type Config struct {
	Level  Level
	Format Format
	// Output defaults to stderr
	Output io.Writer
	Name   string
	// EnableCaller adds file:line of the logging call to every entry
	EnableCaller bool
}

// New creates a logger writing text entries at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatText})
}

func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: formatterFor(config.Format),
		output:    output,
		name:      config.Name,
		caller:    config.EnableCaller,
		fields:    Fields{},
		writeMu:   &sync.Mutex{},
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

func (l *Logger) derive() *Logger {
	clone := *l
	clone.fields = make(Fields, len(l.fields)+1)
	l.fields.copyInto(clone.fields)
	return &clone
}

// WithField returns a logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.derive()
	clone.fields[key] = value
	return clone
}

// WithRunID tags all entries with the id of an interpreter run
func (l *Logger) WithRunID(runID string) *Logger {
	clone := l.derive()
	clone.runID = runID
	return clone
}

func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// WarnWithErr logs a warning together with the error that caused it
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// ErrorWithErr logs an error entry together with err
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs err with its code, severity and details. Program errors
// are the user's concern and are logged at debug; the CLI prints them as
// a diagnostic line anyway.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	e, ok := mdwerror.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     e.Code(),
		"error_severity": e.Severity().String(),
	}
	for k, v := range e.Details() {
		fields["error_"+k] = v
	}
	l.log(levelForError(e), err.Error(), err, fields)
}

func levelForError(e *mdwerror.Error) Level {
	switch {
	case e.Code().IsProgramError():
		return LevelDebug
	case e.Severity() == mdwerror.SeverityLow:
		return LevelInfo
	case e.Severity() == mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// StartTimer starts timing operation; Stop logs its duration
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{
		logger:    l,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{},
	}
}

// IsLevelEnabled reports whether entries at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// callerSkip skips log itself and the exported method (or Timer.Stop)
// that called it
const callerSkip = 2

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := &Entry{
		Time:    time.Now(),
		Level:   level,
		Message: message,
		Logger:  l.name,
		RunID:   l.runID,
		Fields:  make(Fields, len(l.fields)),
		Err:     err,
	}
	l.fields.copyInto(entry.Fields)
	for _, f := range fields {
		f.copyInto(entry.Fields)
	}
	if l.caller {
		if _, file, line, ok := runtime.Caller(callerSkip); ok {
			entry.Caller = filepath.Base(file) + ":" + strconv.Itoa(line)
		}
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.writeMu.Lock()
	_, _ = l.output.Write(formatted)
	l.writeMu.Unlock()
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the process-wide logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}
