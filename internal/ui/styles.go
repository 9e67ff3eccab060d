package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for one-shot command output
var (
	PrimaryColor = lipgloss.Color("#2E8B57") // Forest green - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// HeaderTitleStyle is for the command title (e.g., "LOCATION LOOKUP")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "ecotrip locate")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Provider:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	StepCompleteStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	StepRunningStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	StepPendingStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// StepNoteStyle is for optional notes in parentheses
	StepNoteStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)

	// ListNameStyle is for the first column of reference lists
	ListNameStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	ListDescStyle = lipgloss.NewStyle().
			Foreground(TextColor)
)

// Step status markers
const (
	StepMarkerComplete = "✓"
	StepMarkerRunning  = "●"
	StepMarkerPending  = "·"
	SuccessMarker      = "✓"
	FailureMarker      = "✗"
	WarningMarker      = "⚠"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return clampWidth(width, err)
}

// IsInteractive reports whether stdin is a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func clampWidth(width int, err error) int {
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
