package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/clite/foundation/clite"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))
)

func colorEnabled() bool {
	if noColor {
		return false
	}
	return appConfig == nil || appConfig.Output.Color
}

// paint renders text with style unless color is disabled
func paint(style lipgloss.Style, text string) string {
	if !colorEnabled() {
		return text
	}
	return style.Render(text)
}

// printDiagnostic writes the single failure line to stderr
func printDiagnostic(err error) {
	fmt.Fprintln(os.Stderr, paint(errorStyle, "error:")+" "+clite.Describe(err))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
