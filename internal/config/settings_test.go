package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "ecotrip") {
		t.Errorf("GetConfigDir() = %v, should contain 'ecotrip'", configDir)
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix-like systems")
	}

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(tmp, "ecotrip"); configDir != want {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != CurrentVersion {
		t.Errorf("Version = %v, want %v", s.Version, CurrentVersion)
	}
	if s.Geocoding.BaseURL != DefaultGeocodingURL {
		t.Errorf("Geocoding.BaseURL = %v, want %v", s.Geocoding.BaseURL, DefaultGeocodingURL)
	}
	if s.Geocoding.Timeout != 10*time.Second {
		t.Errorf("Geocoding.Timeout = %v, want 10s", s.Geocoding.Timeout)
	}
	if s.Location.Provider != ProviderNone {
		t.Errorf("Location.Provider = %v, want %v", s.Location.Provider, ProviderNone)
	}
	if !s.Planner.ChainedMobileModals || !s.Planner.CalendarModal {
		t.Error("Planner should enable chained modals and the calendar modal by default")
	}
	if s.Planner.DemoDates {
		t.Error("Planner.DemoDates should be false by default")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate, got %v", err)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if s.Geocoding.BaseURL != DefaultGeocodingURL {
		t.Errorf("missing file should give defaults, got %+v", s)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
geocoding:
  timeout: 3s
location:
  provider: static
  latitude: 9.748
  longitude: -83.753
planner:
  demo_dates: true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if s.Geocoding.Timeout != 3*time.Second {
		t.Errorf("Geocoding.Timeout = %v, want 3s", s.Geocoding.Timeout)
	}
	if s.Geocoding.BaseURL != DefaultGeocodingURL {
		t.Errorf("Geocoding.BaseURL = %v, want default", s.Geocoding.BaseURL)
	}
	if s.Location.Provider != ProviderStatic || s.Location.Latitude != 9.748 || s.Location.Longitude != -83.753 {
		t.Errorf("Location = %+v", s.Location)
	}
	if s.Location.GPSDTimeout != DefaultGPSDTimeout {
		t.Errorf("Location.GPSDTimeout = %v, want default", s.Location.GPSDTimeout)
	}
	if !s.Planner.DemoDates {
		t.Error("Planner.DemoDates should be true")
	}
	if !s.Planner.ChainedMobileModals {
		t.Error("unset planner keys should keep their defaults")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "geocoding: [unclosed"},
		{"bad version", "version: 7\n"},
		{"bad provider", "location:\n  provider: satellite\n"},
		{"latitude out of range", "location:\n  provider: static\n  latitude: 123\n"},
		{"bad duration", "geocoding:\n  timeout: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("LoadFrom() should fail")
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	s := NewSettings()
	s.Location.Provider = ProviderGPSD
	s.Location.GPSDAddr = "127.0.0.1:2947"
	s.Planner.CalendarModal = false

	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# ecotrip configuration file") {
		t.Error("saved file should start with the header comment")
	}
	if !strings.Contains(string(data), "timeout: 10s") {
		t.Errorf("durations should be written human-readable:\n%s", data)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Location.GPSDAddr != "127.0.0.1:2947" {
		t.Errorf("GPSDAddr = %v", loaded.Location.GPSDAddr)
	}
	if loaded.Planner.CalendarModal {
		t.Error("CalendarModal should be false after round trip")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after save")
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := CreateDefaultConfig("", false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if _, err := CreateDefaultConfig("", false); err == nil {
		t.Error("second CreateDefaultConfig(false) should refuse to overwrite")
	}
	if _, err := CreateDefaultConfig("", true); err != nil {
		t.Errorf("CreateDefaultConfig(true) error = %v", err)
	}
}

func TestCreateDefaultConfigAtPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "custom.yaml")

	got, err := CreateDefaultConfig(path, false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}

	settings, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if settings.Location.Provider != NewSettings().Location.Provider {
		t.Errorf("Provider = %q, want default", settings.Location.Provider)
	}

	if _, err := CreateDefaultConfig(path, false); err == nil {
		t.Error("CreateDefaultConfig(false) should refuse an existing file")
	}
}
