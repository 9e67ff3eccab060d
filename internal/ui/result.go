package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type            ResultType
	Title           string   // e.g., "Location found"
	Details         Details  // Key-value details to display
	Error           error    // Error (for failure results)
	Troubleshooting []string // Troubleshooting tips (for failure results)
	Width           int      // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details Details) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details Details) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = r.Details.Add(key, value)
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var (
		titleStyle lipgloss.Style
		marker     string
		label      string
		border     lipgloss.Color
	)
	switch r.Type {
	case ResultFailure:
		titleStyle, marker, label, border = ErrorTitleStyle, FailureMarker, "FAILED", ErrorColor
	case ResultWarning:
		titleStyle, marker, label, border = WarningTitleStyle, WarningMarker, "WARNING", WarningColor
	default:
		titleStyle, marker, label, border = SuccessTitleStyle, SuccessMarker, "SUCCESS", SuccessColor
	}

	lines := []string{
		"",
		titleStyle.Render(fmt.Sprintf("   %s  %s  ─  %s", marker, label, r.Title)),
		"",
	}

	if r.Type == ResultFailure && r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Details) > 0 {
		lines = append(lines, r.Details.render("   ")...)
		lines = append(lines, "")
	}

	if r.Type == ResultFailure && len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshootingBox(width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// renderTroubleshootingBox renders the inner troubleshooting box
func (r *Result) renderTroubleshootingBox(width int) string {
	lines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}

	innerWidth := width - 12 // Indent within outer box
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
