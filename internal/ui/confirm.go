package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm prints a warning box and asks a yes/no question on out, reading
// the answer from in. Anything but "y" or "yes" is a no.
func Confirm(out io.Writer, in io.Reader, title string, warnings []string, question string) bool {
	width := GetTerminalWidth()

	lines := []string{
		"",
		WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)),
		"",
	}
	for _, warning := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+warning))
	}
	lines = append(lines, "")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	_, _ = fmt.Fprintln(out, box)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprint(out, WarningTitleStyle.Render(question+" [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	_, _ = fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Cancelled."))
	return false
}
