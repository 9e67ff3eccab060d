package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes UI components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params Details) {
	p.Println(NewHeader(title, command, params).SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details Details) {
	p.Println(NewSuccessResult(title, details).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details Details) {
	p.Println(NewWarningResult(title, details).SetWidth(p.width).Render())
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(NewFailureResult(title, err, troubleshooting).SetWidth(p.width).Render())
}

// PrintList prints aligned name/description rows
func (p *Printer) PrintList(rows Details) {
	nameWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.Key); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		name := ListNameStyle.Render(row.Key)
		pad := strings.Repeat(" ", nameWidth-lipgloss.Width(row.Key)+2)
		b.WriteString("  " + name + pad + ListDescStyle.Render(row.Value) + "\n")
	}
	p.Println(strings.TrimRight(b.String(), "\n"))
}

// PrintFile prints a titled box around raw file content
func (p *Printer) PrintFile(title, content string) {
	p.Println(RenderFileBox(title, content, p.width))
}

// RenderFileBox renders raw content (e.g., a config file) in a muted box
func RenderFileBox(title, content string, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		TroubleshootingTitleStyle.Render(title),
		lipgloss.NewStyle().Foreground(TextColor).Render(strings.TrimRight(content, "\n")),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width-4).
		Padding(0, 1).
		Render(body)
}
