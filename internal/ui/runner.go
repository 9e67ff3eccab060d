package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// RunnerConfig holds configuration for a one-shot command execution
type RunnerConfig struct {
	Title     string    // Command title (e.g., "Location Lookup")
	Command   string    // Full command (e.g., "ecotrip locate")
	Params    Details   // Parameters to display in header
	StepNames []string  // Names for each step
	Output    io.Writer // Output writer (default: os.Stdout)

	// Troubleshoot returns tips for a failure. Optional.
	Troubleshoot func(err error) []string

	// FailureTitle names a failure. Optional; the default is "<title> failed".
	FailureTitle func(err error) string

	// ShowBar prints a progress bar under the steps when the operation ends.
	ShowBar bool
}

// Warning is returned by an operation that finished without the outcome it
// was after. Run prints it in a warning box and does not report an error.
type Warning struct {
	Title   string
	Details Details
}

func (w *Warning) Error() string {
	return w.Title
}

// Runner prints header, steps and a result box around an operation.
type Runner struct {
	config   RunnerConfig
	header   *Header
	progress *Progress
	output   io.Writer
	width    int
}

// NewRunner creates a new runner
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	width := GetTerminalWidth()

	return &Runner{
		config:   config,
		header:   NewHeader(config.Title, config.Command, config.Params).SetWidth(width),
		progress: NewProgress(config.StepNames...),
		output:   config.Output,
		width:    width,
	}
}

// SetWidth overrides the detected terminal width
func (r *Runner) SetWidth(width int) *Runner {
	r.width = width
	r.header.SetWidth(width)
	return r
}

// Operation does the work and returns the details for the success box
type Operation func(ctx context.Context, onStep StepCallback) (Details, error)

// Run executes the operation and prints its outcome
func (r *Runner) Run(ctx context.Context, title string, operation Operation) (Details, error) {
	start := time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	details, err := operation(ctx, r.stepCallback())
	duration := time.Since(start).Round(time.Millisecond)

	if r.config.ShowBar {
		_, _ = fmt.Fprintln(r.output)
		_, _ = fmt.Fprintln(r.output, r.progress.RenderBar())
	}

	_, _ = fmt.Fprintln(r.output)

	var warning *Warning
	if errors.As(err, &warning) {
		details = warning.Details.Add("Duration", duration.String())
		result := NewWarningResult(warning.Title, details).SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, result.Render())
		return details, nil
	}

	if err != nil {
		var tips []string
		if r.config.Troubleshoot != nil {
			tips = r.config.Troubleshoot(err)
		}
		failureTitle := title + " failed"
		if r.config.FailureTitle != nil {
			failureTitle = r.config.FailureTitle(err)
		}
		result := NewFailureResult(failureTitle, err, tips).SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, result.Render())
		return nil, err
	}

	details = details.Add("Duration", duration.String())
	result := NewSuccessResult(title, details).SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
	return details, nil
}

func (r *Runner) stepCallback() StepCallback {
	return func(stepNumber int, status StepStatus, message string) {
		r.progress.UpdateStep(stepNumber, status, message)
		if stepNumber < 1 || stepNumber > len(r.progress.Steps) {
			return
		}

		step := r.progress.Steps[stepNumber-1]
		switch status {
		case StepComplete, StepFailed, StepSkipped:
			_, _ = fmt.Fprintln(r.output, r.progress.renderStepLine(step))
		case StepRunning:
			// Overwritten when the step finishes
			_, _ = fmt.Fprint(r.output, r.progress.renderStepLine(step)+"\r")
		}
	}
}
