package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header represents a command header with title, command, and parameters.
type Header struct {
	Title   string  // e.g., "LOCATION LOOKUP"
	Command string  // e.g., "ecotrip locate"
	Params  Details // e.g., {"Provider", "gpsd"}
	Width   int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params Details) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) > 0 {
		dividerWidth := width - 6 // Account for border and padding
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := RenderHorizontalDivider(dividerWidth, "─")

		paramLines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			paramLines = append(paramLines, HeaderParamKeyStyle.Render(p.Key+":")+" "+HeaderParamValueStyle.Render(p.Value))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, divider, strings.Join(paramLines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
