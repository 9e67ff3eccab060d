package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// APIKeyEnvVar holds the OpenCage API key
	APIKeyEnvVar = "OPENCAGE_API_KEY"

	// LegacyAPIKeyEnvVar is the variable name the web build used. Read as a
	// fallback so existing .env files keep working.
	LegacyAPIKeyEnvVar = "NEXT_PUBLIC_OPENCAGE_API_KEY"

	envFile = ".env"
)

// EnvFiles returns the .env files that LoadEnv considers, in priority order:
// the working directory first, then the config directory.
func EnvFiles() []string {
	files := []string{envFile}
	if dir, err := GetConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, envFile))
	}
	return files
}

// LoadEnv loads variables from any existing .env files. Variables already
// present in the environment are never overridden, and earlier files win
// over later ones.
func LoadEnv() error {
	return loadEnvFiles(EnvFiles()...)
}

func loadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// APIKey returns the reverse-geocoding API key, or "" when none is set.
func APIKey() string {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnvVar)); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv(LegacyAPIKeyEnvVar))
}
