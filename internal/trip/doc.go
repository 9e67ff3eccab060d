// Package trip holds the trip request and the state machine that drives the
// planning form.
//
// The package is free of any terminal or network concerns so the form logic
// can be exercised directly by tests. It provides:
//   - Request: the immutable trip request value and its field setter
//   - Form: the request plus step cursor, active overlay and date window
//   - Transitions: the declared (trigger, viewport) -> overlay table
//   - The static catalog of inspiration destinations, interest tags and
//     accommodation types
//
// # Overlays
//
// Only one overlay can be active at a time. Overlays open either from an
// explicit user action (Form.Open) or from a transition rule evaluated after a
// mutation. On narrow viewports the rules chain the form into a guided
// sequence:
//
//	accommodation chosen  -> Interests
//	destination committed -> Calendar
//	inspiration chosen    -> Calendar
//
// # Dates
//
// Dates are civil days, represented as time.Time values at UTC midnight (see
// Day). The date window rejects days before today and after the two-year
// horizon, and keeps the start on or before the end.
package trip
