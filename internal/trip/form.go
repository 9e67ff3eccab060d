package trip

import (
	"fmt"
	"time"
)

// Options selects the behaviors of the form.
type Options struct {
	// ChainedMobileModals opens the calendar after the destination is set on
	// narrow viewports.
	ChainedMobileModals bool

	// CalendarModal enables the calendar overlay. Without it dates are only
	// edited through the inline range picker.
	CalendarModal bool
}

// DefaultOptions enables every behavior.
func DefaultOptions() Options {
	return Options{ChainedMobileModals: true, CalendarModal: true}
}

// MinimalOptions keeps only the accommodation -> interests chain.
func MinimalOptions() Options {
	return Options{}
}

// Form is the planning form state: the request, the step cursor and the
// active overlay.
type Form struct {
	Request Request
	Step    Step
	Overlay Overlay
	Options Options
	Window  DateWindow

	transitions Transitions
}

// NewForm creates a form with a default request. now anchors the date window.
func NewForm(opts Options, now time.Time) Form {
	return Form{
		Request:     NewRequest(),
		Step:        StepDetails,
		Overlay:     OverlayNone,
		Options:     opts,
		Window:      NewDateWindow(now),
		transitions: TransitionsFor(opts),
	}
}

// Transitions returns the table the form evaluates.
func (f *Form) Transitions() Transitions {
	return f.transitions
}

// SetField writes one request field, then evaluates the transition table.
// Non-zero dates must lie inside the window; a zero date clears the field.
func (f *Form) SetField(field Field, value any, vp Viewport) error {
	if d, ok := value.(time.Time); ok && !d.IsZero() {
		switch field {
		case FieldStartDate:
			return f.PickStartDate(d)
		case FieldEndDate:
			return f.PickEndDate(d)
		}
	}

	next, err := f.Request.Set(field, value)
	if err != nil {
		return err
	}
	f.Request = next

	if field == FieldAccommodationType {
		f.fire(TriggerAccommodationChanged, vp)
	}
	return nil
}

// CommitDestination handles the destination field losing focus.
func (f *Form) CommitDestination(vp Viewport) {
	if f.Request.Destination == "" {
		return
	}
	f.fire(TriggerDestinationCommitted, vp)
}

// ChooseInspiration writes the chosen destination and closes the inspiration
// overlay.
func (f *Form) ChooseInspiration(name string, vp Viewport) error {
	d, ok := FindDestination(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDestination, name)
	}
	next, err := f.Request.Set(FieldDestination, d.Name)
	if err != nil {
		return err
	}
	f.Request = next
	f.CloseOverlay(OverlayInspiration)
	f.fire(TriggerInspirationChosen, vp)
	return nil
}

// ToggleInterest adds or removes one interest tag.
func (f *Form) ToggleInterest(tag InterestTag, checked bool) error {
	next, err := f.Request.ToggleInterest(tag, checked)
	if err != nil {
		return err
	}
	f.Request = next
	return nil
}

// PickStartDate writes the start date unless the day is disabled.
func (f *Form) PickStartDate(d time.Time) error {
	if f.Window.StartDisabled(d, f.Request.EndDate) {
		return fmt.Errorf("%w: start %s", ErrDateNotAllowed, Day(d).Format(DateLayout))
	}
	next, err := f.Request.Set(FieldStartDate, d)
	if err != nil {
		return err
	}
	f.Request = next
	return nil
}

// PickEndDate writes the end date unless the day is disabled.
func (f *Form) PickEndDate(d time.Time) error {
	if f.Window.EndDisabled(d, f.Request.StartDate) {
		return fmt.Errorf("%w: end %s", ErrDateNotAllowed, Day(d).Format(DateLayout))
	}
	next, err := f.Request.Set(FieldEndDate, d)
	if err != nil {
		return err
	}
	f.Request = next
	return nil
}

// SetDateRange writes both dates at once. end may be zero while a range is
// being picked.
func (f *Form) SetDateRange(start, end time.Time) error {
	if start.IsZero() || f.Window.RangeDisabled(start) {
		return fmt.Errorf("%w: start %s", ErrDateNotAllowed, Day(start).Format(DateLayout))
	}
	if !end.IsZero() && (f.Window.RangeDisabled(end) || Day(end).Before(Day(start))) {
		return fmt.Errorf("%w: end %s", ErrDateNotAllowed, Day(end).Format(DateLayout))
	}

	r := f.Request
	r.StartDate = Day(start)
	r.EndDate = Day(end)
	f.Request = r
	return nil
}

// ApplyDemoDates assigns the demo date range without consulting the window.
func (f *Form) ApplyDemoDates() {
	r := f.Request
	r.StartDate = DemoStartDate
	r.EndDate = DemoEndDate
	f.Request = r
}

// Open shows an overlay in response to an explicit user action.
func (f *Form) Open(o Overlay) error {
	if o == OverlayCalendar && !f.Options.CalendarModal {
		return fmt.Errorf("%w: %s", ErrOverlayUnavailable, o)
	}
	f.Overlay = o
	return nil
}

// CloseOverlay hides o if it is the active overlay.
func (f *Form) CloseOverlay(o Overlay) {
	if f.Overlay == o {
		f.Overlay = OverlayNone
	}
}

// Submit advances the step cursor.
func (f *Form) Submit() error {
	next, err := f.Step.Next()
	if err != nil {
		return err
	}
	f.Step = next
	return nil
}

func (f *Form) fire(trigger Trigger, vp Viewport) {
	if o, ok := f.transitions.Next(trigger, vp); ok {
		f.Overlay = o
	}
}
