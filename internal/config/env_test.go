package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		primary string
		legacy  string
		want    string
	}{
		{"none", "", "", ""},
		{"primary", "abc", "", "abc"},
		{"legacy fallback", "", "old", "old"},
		{"primary wins", "abc", "old", "abc"},
		{"whitespace only", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(APIKeyEnvVar, tt.primary)
			t.Setenv(LegacyAPIKeyEnvVar, tt.legacy)

			if got := APIKey(); got != tt.want {
				t.Errorf("APIKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")

	if err := os.WriteFile(first, []byte("OPENCAGE_API_KEY=from-first\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("OPENCAGE_API_KEY=from-second\n"), 0600); err != nil {
		t.Fatal(err)
	}

	// t.Setenv registers cleanup, then unset so godotenv can fill it
	t.Setenv(APIKeyEnvVar, "")
	os.Unsetenv(APIKeyEnvVar)

	if err := loadEnvFiles(filepath.Join(dir, "missing.env"), first, second); err != nil {
		t.Fatalf("loadEnvFiles() error = %v", err)
	}

	if got := APIKey(); got != "from-first" {
		t.Errorf("APIKey() = %q, want from-first", got)
	}
}

func TestLoadEnvFiles_ExistingEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("OPENCAGE_API_KEY=from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(APIKeyEnvVar, "from-env")

	if err := loadEnvFiles(path); err != nil {
		t.Fatalf("loadEnvFiles() error = %v", err)
	}
	if got := APIKey(); got != "from-env" {
		t.Errorf("APIKey() = %q, want from-env", got)
	}
}
