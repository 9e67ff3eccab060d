package geo

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/ecotrip/internal/geocode"
	"github.com/muurk/ecotrip/internal/logging"
)

// Geocoder turns coordinates into a human-readable address.
// *geocode.Client satisfies it.
type Geocoder interface {
	ReverseFormatted(ctx context.Context, lat, lon float64) (string, bool, error)
}

// GeocoderFactory creates a Geocoder for an API key
type GeocoderFactory func(apiKey string) Geocoder

// Result is the outcome of a successful lookup.
// Found is false when the geocoder returned no usable address; callers
// should then leave the starting location untouched.
type Result struct {
	Position Position
	Address  string
	Found    bool
}

// Resolver turns "use my current location" into an address.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	Locator  Locator
	APIKey   string
	Geocoder GeocoderFactory
}

// NewResolver creates a resolver backed by the OpenCage client at baseURL
func NewResolver(locator Locator, apiKey, baseURL string, timeout time.Duration) *Resolver {
	return &Resolver{
		Locator: locator,
		APIKey:  apiKey,
		Geocoder: func(key string) Geocoder {
			client := geocode.NewClientWithURL(baseURL, key)
			if timeout > 0 {
				client.SetTimeout(timeout)
			}
			return client
		},
	}
}

// Resolve obtains the current position and reverse-geocodes it.
// Every failure is a *LocationError. The API key is checked only after a
// position has been obtained.
func (r *Resolver) Resolve(ctx context.Context) (Result, error) {
	if r.Locator == nil || !r.Locator.Available() {
		return Result{}, newLocationError(KindUnsupportedPlatform, nil)
	}

	pos, err := r.Locator.CurrentPosition(ctx)
	if err != nil {
		logging.Debug("Locator failed", zap.String("locator", r.Locator.Name()), zap.Error(err))
		return Result{}, newLocationError(KindPositionUnavailable, err)
	}

	key := strings.TrimSpace(r.APIKey)
	if key == "" {
		return Result{Position: pos}, newLocationError(KindMissingConfiguration, nil)
	}

	if r.Geocoder == nil {
		return Result{Position: pos}, newLocationError(KindGeocodingError, nil)
	}

	addr, found, err := r.Geocoder(key).ReverseFormatted(ctx, pos.Latitude, pos.Longitude)
	if err != nil {
		return Result{Position: pos}, newLocationError(KindGeocodingError, err)
	}

	return Result{Position: pos, Address: addr, Found: found}, nil
}
