// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/clite/foundation/core/log"
	"github.com/msto63/clite/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: text, json, console or logfmt (default: text)
	Format string

	// Output receives the entries (default: stderr). Program output goes
	// to stdout, so logs must not.
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Caller adds file:line to every entry
	Caller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromGeneral builds a logger configuration from the [general] section
func FromGeneral(name string, general config.GeneralConfig) LoggerConfig {
	cfg := DefaultLoggerConfig(name)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	return cfg
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.Caller,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// Install creates a logger and makes it the process default, so packages
// that fall back to mdwlog.GetDefault() share its settings
func Install(cfg LoggerConfig) *mdwlog.Logger {
	logger := NewLogger(cfg)
	mdwlog.SetDefault(logger)
	return logger
}

// parseLevel converts a string level to mdwlog.Level, unknown names
// select warn
func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelWarn
	}
	return parsed
}
