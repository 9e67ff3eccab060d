package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepStatus represents the current state of a step
type StepStatus int

const (
	StepPending  StepStatus = iota // Not yet started
	StepRunning                    // Currently executing
	StepComplete                   // Successfully completed
	StepFailed                     // Failed
	StepSkipped                    // Skipped
)

// Step represents a single step in a multi-step operation
type Step struct {
	Number  int        // Step number (1-based)
	Name    string     // Step description
	Status  StepStatus // Current status
	Message string     // Optional status message (e.g., "gpsd at 10.0.0.4:2947")
}

// Progress tracks a short list of steps and how many have finished
type Progress struct {
	Steps   []Step
	Current int     // Current step (1-based)
	Total   int     // Total steps
	Percent float64 // Progress percentage (0.0 - 1.0)
	bar     progress.Model
}

// NewProgress creates a progress tracker with the given step names
func NewProgress(names ...string) *Progress {
	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i] = Step{Number: i + 1, Name: name, Status: StepPending}
	}

	return &Progress{
		Steps: steps,
		Total: len(names),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
		),
	}
}

// UpdateStep updates a specific step's status and optional message
func (p *Progress) UpdateStep(stepNumber int, status StepStatus, message string) {
	if stepNumber < 1 || stepNumber > len(p.Steps) {
		return
	}
	idx := stepNumber - 1
	p.Steps[idx].Status = status
	p.Steps[idx].Message = message

	if status == StepRunning {
		p.Current = stepNumber
		return
	}

	completed := 0
	for _, s := range p.Steps {
		if s.Status == StepComplete || s.Status == StepSkipped {
			completed++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(completed) / float64(p.Total)
	}
}

// RenderBar returns the bar with its percentage and step counter
func (p *Progress) RenderBar() string {
	percentStr := fmt.Sprintf("%3.0f%%", p.Percent*100)
	stepStr := fmt.Sprintf("[%d/%d]", p.Current, p.Total)
	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(fmt.Sprintf("%s  %s  %s", p.bar.ViewAs(p.Percent), percentStr, stepStr))
}

// renderStepLine renders a single step line
func (p *Progress) renderStepLine(step Step) string {
	var marker string
	var style lipgloss.Style

	switch step.Status {
	case StepComplete:
		marker, style = StepMarkerComplete, StepCompleteStyle
	case StepRunning:
		marker, style = StepMarkerRunning, StepRunningStyle
	case StepFailed:
		marker, style = FailureMarker, ErrorTitleStyle
	case StepSkipped:
		marker, style = "⊘", StepPendingStyle
	default:
		marker, style = StepMarkerPending, StepPendingStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  [%d/%d] ", step.Number, p.Total))
	b.WriteString(style.Render(step.Name))

	// Align markers in one column
	padding := 36 - lipgloss.Width(step.Name)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(style.Render(marker))

	if step.Message != "" {
		b.WriteString("  ")
		b.WriteString(StepNoteStyle.Render("(" + step.Message + ")"))
	}

	return b.String()
}

// StepCallback is the function signature for step progress updates.
type StepCallback func(stepNumber int, status StepStatus, message string)
