package trip

import "errors"

var (
	// ErrUnknownField is returned when Set is called with a field name the
	// request does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidValue is returned when a value has the wrong type or breaks a
	// field invariant.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnknownInterest is returned for interest tags outside the catalog.
	ErrUnknownInterest = errors.New("unknown interest")

	// ErrUnknownDestination is returned when an inspiration pick names a
	// destination that is not in the catalog.
	ErrUnknownDestination = errors.New("unknown destination")

	// ErrDateNotAllowed is returned when a picked day is disabled by the date
	// window.
	ErrDateNotAllowed = errors.New("date not allowed")

	// ErrOverlayUnavailable is returned when opening an overlay the current
	// options do not provide.
	ErrOverlayUnavailable = errors.New("overlay unavailable")

	// ErrStepNotImplemented is returned when advancing past the last step.
	ErrStepNotImplemented = errors.New("step not implemented")
)
