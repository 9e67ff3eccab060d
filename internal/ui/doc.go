// Package ui renders styled output for ecotrip's one-shot commands.
//
// Unlike the interactive wizard in internal/wizard/tui, these components
// print once and exit:
//
//   - Header: command banner showing the operation and its parameters
//   - Progress: numbered step list with status markers
//   - Result: success, failure and warning boxes
//   - Printer: writes the above plus reference lists and file boxes
//   - Runner: header, steps and result around a single operation
//
// Example:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:     "Location Lookup",
//	    Command:   "ecotrip locate",
//	    Params:    ui.Details{}.Add("Provider", "gpsd"),
//	    StepNames: []string{"Reading position", "Reverse geocoding"},
//	})
//
//	_, err := runner.Run(ctx, "Location found", func(ctx context.Context, onStep ui.StepCallback) (ui.Details, error) {
//	    onStep(1, ui.StepRunning, "")
//	    // ... do work ...
//	    onStep(1, ui.StepComplete, "")
//	    return ui.Details{}.Add("Address", addr), nil
//	})
//
// Details keep insertion order so boxes render the same way every time.
//
// Logging is controlled by ECOTRIP_LOG_LEVEL. When unset, zap is silent and
// only this package's output reaches the terminal.
package ui
