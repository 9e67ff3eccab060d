package geo

import (
	"errors"
	"fmt"
)

// Kind classifies why a location lookup failed.
type Kind int

const (
	// KindUnsupportedPlatform means no location capability is configured
	KindUnsupportedPlatform Kind = iota + 1
	// KindPositionUnavailable means the locator could not produce a fix
	KindPositionUnavailable
	// KindMissingConfiguration means the geocoding API key is not set
	KindMissingConfiguration
	// KindGeocodingError means the reverse-geocoding request failed
	KindGeocodingError
)

// String returns a short identifier for the kind
func (k Kind) String() string {
	switch k {
	case KindUnsupportedPlatform:
		return "unsupported_platform"
	case KindPositionUnavailable:
		return "position_unavailable"
	case KindMissingConfiguration:
		return "missing_configuration"
	case KindGeocodingError:
		return "geocoding_error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Message returns the text shown to the user for the kind
func (k Kind) Message() string {
	switch k {
	case KindUnsupportedPlatform:
		return "Geolocation is not supported on this system."
	case KindPositionUnavailable:
		return "Unable to retrieve your location."
	case KindMissingConfiguration:
		return "API key is missing."
	case KindGeocodingError:
		return "Error fetching location details."
	default:
		return "Unknown location error."
	}
}

// LocationError is returned by Resolver.Resolve
type LocationError struct {
	Kind    Kind
	Message string
	Err     error // Underlying error (if any)
}

// Error implements the error interface
func (e *LocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain inspection
func (e *LocationError) Unwrap() error {
	return e.Err
}

func newLocationError(kind Kind, err error) *LocationError {
	return &LocationError{Kind: kind, Message: kind.Message(), Err: err}
}

// KindOf returns the kind of a location error, or 0 for other errors
func KindOf(err error) Kind {
	var lErr *LocationError
	if errors.As(err, &lErr) {
		return lErr.Kind
	}
	return 0
}

// IsKind checks if err is a LocationError of the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// UserMessage returns the user-facing message for an error
func UserMessage(err error) string {
	var lErr *LocationError
	if errors.As(err, &lErr) {
		return lErr.Message
	}
	return err.Error()
}
