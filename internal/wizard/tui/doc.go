// Package tui implements the terminal user interface for the ecotrip planner.
//
// Built on Bubble Tea, it follows the Elm architecture: AppModel owns a
// PlannerModel, and every state change goes through trip.Form so the overlay
// transition table and the date window apply no matter which key caused it.
//
// # Screens
//
//  1. Details: the planner form. Rows are navigated with tab and the arrow
//     keys. Text rows (destination, starting location) take typed input;
//     the rest react to enter, space and the +/- keys.
//  2. Review: a read-only summary. Booking is not implemented, so enter
//     shows a notice and leaves the step unchanged.
//
// # Overlays
//
// At most one overlay is shown, rendered as a centered modal:
//   - Inspiration: pick one of the suggested destinations (esc closes)
//   - Interests: checkbox list, closed only by Done
//   - Calendar: start and end pickers, closed only by Confirm Dates
//
// On narrow terminals (under 80 columns) the form chains overlays: choosing
// an accommodation opens Interests, and committing a destination opens the
// Calendar when both chaining and the calendar modal are enabled. Wide
// terminals pick dates with an inline range picker.
//
// # Current location
//
// "Use my current location" runs a LocationResolver inside a tea.Cmd. A
// second request while one is running is ignored, results of cancelled
// requests are dropped, and quitting cancels the lookup context.
//
// # Usage Example
//
//	app := tui.NewAppModel(tui.Config{
//	    Options:  trip.DefaultOptions(),
//	    Resolver: resolver,
//	})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	final, err := program.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m := final.(tui.AppModel); m.Reviewed() {
//	    fmt.Println(m.Request().Summary())
//	}
package tui
