// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all clite components
const (
	// Platform version
	Platform = "0.3.0"

	// Component versions
	Interpreter = "0.3.0"
	Source      = "0.2.0"
	Journal     = "0.2.0"
	Viewer      = "0.1.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "interpreter", "interp":
		return Interpreter
	case "source":
		return Source
	case "journal":
		return Journal
	case "viewer", "traceviewer":
		return Viewer
	default:
		return Platform
	}
}

// Components returns the component names in display order
func Components() []string {
	return []string{"interpreter", "source", "journal", "viewer"}
}

// Info returns a one line description of the build
func Info() string {
	return fmt.Sprintf("clite %s (commit %s, built %s, %s %s/%s)",
		Platform, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
