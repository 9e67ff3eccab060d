package geocode

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestNewNetworkError_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"timeout", timeoutErr{}, ErrTypeTimeout},
		{"dns", &net.DNSError{Name: "api.opencagedata.com", Err: "no such host"}, ErrTypeDNS},
		{"wrapped dns", fmt.Errorf("dial: %w", &net.DNSError{Name: "x"}), ErrTypeDNS},
		{"plain", errors.New("connection refused"), ErrTypeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewNetworkError("GET request failed", tt.err)
			if got.Type != tt.want {
				t.Errorf("Type = %v, want %v", got.Type, tt.want)
			}
			if !IsNetworkError(got) {
				t.Error("IsNetworkError() = false, want true")
			}
			if !errors.Is(got, tt.err) {
				t.Error("Unwrap chain should reach the cause")
			}
		})
	}
}

func TestGetShortErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewHTTPError(401, "x"), "API key rejected by the geocoding service"},
		{NewHTTPError(429, "x"), "Geocoding quota exceeded"},
		{NewHTTPError(503, "x"), "Geocoding service error (HTTP 503)"},
		{NewParseError("x", nil), "Failed to parse geocoding response"},
		{errors.New("other"), "other"},
	}

	for _, tt := range tests {
		if got := GetShortErrorMessage(tt.err); got != tt.want {
			t.Errorf("GetShortErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestGetTroubleshootingHints(t *testing.T) {
	if hints := GetTroubleshootingHints(NewHTTPError(401, "x")); len(hints) == 0 || !strings.Contains(hints[0], "OPENCAGE_API_KEY") {
		t.Errorf("auth hints = %v", hints)
	}
	if hints := GetTroubleshootingHints(errors.New("plain")); hints != nil {
		t.Errorf("hints for foreign error = %v, want nil", hints)
	}
}

func TestRedact(t *testing.T) {
	if got := redact("q=1&key=abc", "abc"); got != "q=1&key=REDACTED" {
		t.Errorf("redact = %q", got)
	}
	if got := redact("unchanged", ""); got != "unchanged" {
		t.Errorf("redact with empty key = %q", got)
	}
}
