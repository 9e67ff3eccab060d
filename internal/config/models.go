package config

import (
	"fmt"
	"time"
)

// CurrentVersion is the config file schema version.
const CurrentVersion = 1

// Location providers
const (
	ProviderNone   = "none"
	ProviderStatic = "static"
	ProviderGPSD   = "gpsd"
)

const (
	// DefaultGeocodingURL is the OpenCage API root
	DefaultGeocodingURL = "https://api.opencagedata.com"

	// DefaultGeocodingTimeout bounds one reverse-geocoding request
	DefaultGeocodingTimeout = 10 * time.Second

	// DefaultGPSDTimeout bounds discovery plus the wait for a fix
	DefaultGPSDTimeout = 5 * time.Second
)

// Settings represents the entire user configuration file.
// Secrets are never stored here; the API key comes from the environment.
type Settings struct {
	Version   int               `yaml:"version"`
	Geocoding GeocodingSettings `yaml:"geocoding"`
	Location  LocationSettings  `yaml:"location"`
	Planner   PlannerSettings   `yaml:"planner"`
}

// GeocodingSettings configures the reverse geocoder.
type GeocodingSettings struct {
	BaseURL string        `yaml:"base_url"` // API root, e.g. https://api.opencagedata.com
	Timeout time.Duration `yaml:"timeout"`  // Per-request timeout (e.g. "10s")
}

// LocationSettings selects where "use my location" gets coordinates from.
type LocationSettings struct {
	Provider    string        `yaml:"provider"`            // none, static or gpsd
	Latitude    float64       `yaml:"latitude,omitempty"`  // Used by the static provider
	Longitude   float64       `yaml:"longitude,omitempty"` // Used by the static provider
	GPSDAddr    string        `yaml:"gpsd_addr,omitempty"` // host:port; empty means discover over mDNS
	GPSDTimeout time.Duration `yaml:"gpsd_timeout"`
}

// PlannerSettings toggles form behaviour.
type PlannerSettings struct {
	ChainedMobileModals bool `yaml:"chained_mobile_modals"` // Destination/inspiration open the calendar on narrow terminals
	CalendarModal       bool `yaml:"calendar_modal"`        // Narrow terminals pick dates in the calendar overlay
	DemoDates           bool `yaml:"demo_dates"`            // Prefill the demo date range on start
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Geocoding: GeocodingSettings{
			BaseURL: DefaultGeocodingURL,
			Timeout: DefaultGeocodingTimeout,
		},
		Location: LocationSettings{
			Provider:    ProviderNone,
			GPSDTimeout: DefaultGPSDTimeout,
		},
		Planner: PlannerSettings{
			ChainedMobileModals: true,
			CalendarModal:       true,
		},
	}
}

// applyDefaults fills zero values left by a partial config file.
func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = CurrentVersion
	}
	if s.Geocoding.BaseURL == "" {
		s.Geocoding.BaseURL = DefaultGeocodingURL
	}
	if s.Geocoding.Timeout == 0 {
		s.Geocoding.Timeout = DefaultGeocodingTimeout
	}
	if s.Location.Provider == "" {
		s.Location.Provider = ProviderNone
	}
	if s.Location.GPSDTimeout == 0 {
		s.Location.GPSDTimeout = DefaultGPSDTimeout
	}
}

// Validate checks the settings for values the planner cannot use.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if s.Geocoding.Timeout < 0 {
		return fmt.Errorf("geocoding.timeout must be positive, got %s", s.Geocoding.Timeout)
	}
	if s.Location.GPSDTimeout < 0 {
		return fmt.Errorf("location.gpsd_timeout must be positive, got %s", s.Location.GPSDTimeout)
	}

	switch s.Location.Provider {
	case ProviderNone, ProviderGPSD:
	case ProviderStatic:
		if s.Location.Latitude < -90 || s.Location.Latitude > 90 {
			return fmt.Errorf("location.latitude out of range: %v", s.Location.Latitude)
		}
		if s.Location.Longitude < -180 || s.Location.Longitude > 180 {
			return fmt.Errorf("location.longitude out of range: %v", s.Location.Longitude)
		}
	default:
		return fmt.Errorf("unknown location.provider %q (want none, static or gpsd)", s.Location.Provider)
	}

	return nil
}
