package trip

const (
	// NarrowBreakpoint is the viewport width, in logical pixels, below which
	// the form chains its overlays.
	NarrowBreakpoint = 640

	// CellWidth is the number of logical pixels assumed per terminal column.
	CellWidth = 8
)

// ViewportClass groups viewport widths for the transition table.
type ViewportClass int

const (
	ViewportWide ViewportClass = iota
	ViewportNarrow
)

func (c ViewportClass) String() string {
	if c == ViewportNarrow {
		return "narrow"
	}
	return "wide"
}

// Viewport describes the display the form is rendered on.
type Viewport struct {
	Width int // logical pixels
}

// ViewportFromColumns converts a terminal width in columns to a viewport.
func ViewportFromColumns(cols int) Viewport {
	return Viewport{Width: cols * CellWidth}
}

// Class returns the viewport class used by the transition table.
func (v Viewport) Class() ViewportClass {
	if v.Width < NarrowBreakpoint {
		return ViewportNarrow
	}
	return ViewportWide
}

// Trigger names a form event that may open an overlay.
type Trigger string

const (
	TriggerAccommodationChanged Trigger = "accommodation_changed"
	TriggerDestinationCommitted Trigger = "destination_committed"
	TriggerInspirationChosen    Trigger = "inspiration_chosen"
)

// Rule opens an overlay when trigger fires on a viewport of the given class.
type Rule struct {
	Trigger  Trigger
	Viewport ViewportClass
	Opens    Overlay
}

// Transitions is the declared table evaluated after each form mutation.
type Transitions []Rule

// TransitionsFor builds the table for the given options.
func TransitionsFor(opts Options) Transitions {
	t := Transitions{
		{Trigger: TriggerAccommodationChanged, Viewport: ViewportNarrow, Opens: OverlayInterests},
	}
	if opts.ChainedMobileModals && opts.CalendarModal {
		t = append(t,
			Rule{Trigger: TriggerDestinationCommitted, Viewport: ViewportNarrow, Opens: OverlayCalendar},
			Rule{Trigger: TriggerInspirationChosen, Viewport: ViewportNarrow, Opens: OverlayCalendar},
		)
	}
	return t
}

// Next returns the overlay the first matching rule opens.
func (t Transitions) Next(trigger Trigger, vp Viewport) (Overlay, bool) {
	class := vp.Class()
	for _, r := range t {
		if r.Trigger == trigger && r.Viewport == class {
			return r.Opens, true
		}
	}
	return OverlayNone, false
}
