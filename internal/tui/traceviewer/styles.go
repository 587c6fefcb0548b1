// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     traceviewer
// Description: Styles for the trace viewer TUI
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package traceviewer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/clite/foundation/clite/interp"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500

	// Event kind colors
	ColorDeclare = lipgloss.Color("#94A3B8") // Gray
	ColorAssign  = lipgloss.Color("#06B6D4") // Cyan
	ColorPrint   = lipgloss.Color("#10B981") // Emerald
	ColorBranch  = lipgloss.Color("#F59E0B") // Amber
	ColorLoop    = lipgloss.Color("#8B5CF6") // Violet
	ColorReturn  = lipgloss.Color("#EC4899") // Pink
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Event line styles
var (
	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	EventTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Panel styles
var (
	EventPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)
)

// Status styles
var (
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusFailedStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusRunningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Logo
const Logo = "clite trace"

var kindStyles = map[interp.Kind]lipgloss.Style{
	interp.KindDeclare: lipgloss.NewStyle().Foreground(ColorDeclare).Bold(true),
	interp.KindAssign:  lipgloss.NewStyle().Foreground(ColorAssign).Bold(true),
	interp.KindPrint:   lipgloss.NewStyle().Foreground(ColorPrint).Bold(true),
	interp.KindBranch:  lipgloss.NewStyle().Foreground(ColorBranch).Bold(true),
	interp.KindLoop:    lipgloss.NewStyle().Foreground(ColorLoop).Bold(true),
	interp.KindReturn:  lipgloss.NewStyle().Foreground(ColorReturn).Bold(true),
}

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderKindBadge renders an event kind with its color
func RenderKindBadge(kind interp.Kind) string {
	style, ok := kindStyles[kind]
	if !ok {
		style = EventTextStyle
	}
	return style.Render(fmt.Sprintf("%-7s", kind))
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}
