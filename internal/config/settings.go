package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "ecotrip"
	configFile = "config.yaml"
	logFile    = "ecotrip.log"
)

var (
	// Global settings instance (loaded lazily)
	globalSettings     *Settings
	globalSettingsOnce sync.Once
	globalSettingsErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
//   - Linux: $XDG_CONFIG_HOME/ecotrip or $HOME/.config/ecotrip
//   - macOS: $HOME/.config/ecotrip
//   - Windows: %LOCALAPPDATA%\ecotrip
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// GetLogPath returns where the wizard writes its log when logging is enabled.
func GetLogPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFile), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist.
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	// User-only permissions
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Load loads the settings from the default config path.
// If the file doesn't exist, returns default settings.
// Thread-safe - multiple calls return the same instance.
func Load() (*Settings, error) {
	globalSettingsOnce.Do(func() {
		path, err := GetConfigPath()
		if err != nil {
			globalSettingsErr = fmt.Errorf("failed to get config path: %w", err)
			return
		}
		globalSettings, globalSettingsErr = LoadFrom(path)
	})
	return globalSettings, globalSettingsErr
}

// LoadFrom reads settings from path, filling defaults for anything unset.
// A missing file yields default settings.
func LoadFrom(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := NewSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	settings.applyDefaults()

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return settings, nil
}

// SaveTo writes the settings to path atomically.
func (s *Settings) SaveTo(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# ecotrip configuration file
#
# The OpenCage API key is NEVER stored here. Set OPENCAGE_API_KEY in the
# environment or in a .env file next to this one.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes a default configuration file to path, or to the
// default config path when path is empty. It refuses to replace an existing
// file unless force is set.
func CreateDefaultConfig(path string, force bool) (string, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	return path, NewSettings().SaveTo(path)
}
