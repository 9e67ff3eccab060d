package trip

import "time"

// HorizonYears is how far ahead of today a trip date may be picked.
const HorizonYears = 2

// DateLayout is the layout used to parse and print civil days.
const DateLayout = "2006-01-02"

// Day truncates t to its calendar day, keeping the date as seen in t's
// location and returning it at UTC midnight.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a civil day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// DateWindow bounds the days a picker may offer.
type DateWindow struct {
	Today   time.Time
	Horizon time.Time
}

// NewDateWindow returns the window starting at the day of now and ending
// HorizonYears later.
func NewDateWindow(now time.Time) DateWindow {
	today := Day(now)
	return DateWindow{
		Today:   today,
		Horizon: today.AddDate(HorizonYears, 0, 0),
	}
}

// outside reports whether d is before today or after the horizon.
func (w DateWindow) outside(d time.Time) bool {
	d = Day(d)
	return d.Before(w.Today) || d.After(w.Horizon)
}

// StartDisabled reports whether d cannot be picked as a start date given the
// currently chosen end date (zero when unset).
func (w DateWindow) StartDisabled(d, end time.Time) bool {
	if w.outside(d) {
		return true
	}
	return !end.IsZero() && Day(d).After(Day(end))
}

// EndDisabled reports whether d cannot be picked as an end date given the
// currently chosen start date (zero when unset).
func (w DateWindow) EndDisabled(d, start time.Time) bool {
	if w.outside(d) {
		return true
	}
	return !start.IsZero() && Day(d).Before(Day(start))
}

// RangeDisabled reports whether d can start or end a range at all.
func (w DateWindow) RangeDisabled(d time.Time) bool {
	return w.outside(d)
}

// Demo date range assigned by the deferred-defaults variant of the form.
var (
	DemoStartDate = time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC)
	DemoEndDate   = time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC)
)
