package geo

import (
	"context"
	"fmt"

	"github.com/muurk/ecotrip/internal/config"
)

// Position is a WGS84 coordinate pair
type Position struct {
	Latitude  float64
	Longitude float64
}

// String formats the position as "lat, lon"
func (p Position) String() string {
	return fmt.Sprintf("%.5f, %.5f", p.Latitude, p.Longitude)
}

// Locator is a source of the user's current position
type Locator interface {
	// Name identifies the locator in logs and output
	Name() string

	// Available reports whether the locator can be asked at all
	Available() bool

	// CurrentPosition returns the current position or an error
	CurrentPosition(ctx context.Context) (Position, error)
}

// Static always reports the same configured position
type Static struct {
	Position Position
}

// NewStatic creates a locator fixed at lat, lon
func NewStatic(lat, lon float64) *Static {
	return &Static{Position: Position{Latitude: lat, Longitude: lon}}
}

func (s *Static) Name() string    { return config.ProviderStatic }
func (s *Static) Available() bool { return true }

func (s *Static) CurrentPosition(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return s.Position, nil
}

// Unsupported is the locator used when no capability is configured
type Unsupported struct{}

func (Unsupported) Name() string    { return config.ProviderNone }
func (Unsupported) Available() bool { return false }

func (Unsupported) CurrentPosition(context.Context) (Position, error) {
	return Position{}, fmt.Errorf("no location provider configured")
}

// NewLocator builds the locator selected by the settings
func NewLocator(settings config.LocationSettings) (Locator, error) {
	switch settings.Provider {
	case "", config.ProviderNone:
		return Unsupported{}, nil
	case config.ProviderStatic:
		return NewStatic(settings.Latitude, settings.Longitude), nil
	case config.ProviderGPSD:
		return NewGPSD(settings.GPSDAddr, settings.GPSDTimeout), nil
	default:
		return nil, fmt.Errorf("unknown location provider %q", settings.Provider)
	}
}
