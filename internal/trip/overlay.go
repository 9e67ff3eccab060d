package trip

// Overlay is the overlay currently shown above the form.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayInspiration
	OverlayInterests
	OverlayCalendar
)

// String returns the overlay name used in logs.
func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "none"
	case OverlayInspiration:
		return "inspiration"
	case OverlayInterests:
		return "interests"
	case OverlayCalendar:
		return "calendar"
	default:
		return "unknown"
	}
}
