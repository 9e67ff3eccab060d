package geocode

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/muurk/ecotrip/internal/urls"
)

// ErrorType represents the category of a geocoding failure
type ErrorType int

const (
	// ErrTypeNetwork indicates the request never got a response
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request timed out
	ErrTypeTimeout
	// ErrTypeDNS indicates the API host could not be resolved
	ErrTypeDNS
	// ErrTypeAuth indicates the API key was rejected (401/403)
	ErrTypeAuth
	// ErrTypeQuota indicates the account is out of requests (402/429)
	ErrTypeQuota
	// ErrTypeHTTP indicates any other non-2xx status
	ErrTypeHTTP
	// ErrTypeParse indicates the body was not the expected JSON
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeQuota:
		return "Quota Exceeded"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by every failing Client call
type Error struct {
	Type       ErrorType
	Message    string
	StatusCode int   // HTTP status code (if applicable)
	Err        error // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNetworkError classifies a transport failure
func NewNetworkError(message string, err error) *Error {
	if os.IsTimeout(err) {
		return &Error{Type: ErrTypeTimeout, Message: "request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	return &Error{Type: ErrTypeNetwork, Message: message, Err: err}
}

// NewHTTPError creates an error from a non-2xx status code
func NewHTTPError(statusCode int, message string) *Error {
	errType := ErrTypeHTTP
	switch statusCode {
	case 401, 403:
		errType = ErrTypeAuth
	case 402, 429:
		errType = ErrTypeQuota
	}
	return &Error{Type: errType, Message: message, StatusCode: statusCode}
}

// NewParseError creates a response parsing error
func NewParseError(message string, err error) *Error {
	return &Error{Type: ErrTypeParse, Message: message, Err: err}
}

func isType(err error, t ErrorType) bool {
	var gErr *Error
	if errors.As(err, &gErr) {
		return gErr.Type == t
	}
	return false
}

// IsAuthError checks if an error is a rejected API key
func IsAuthError(err error) bool {
	return isType(err, ErrTypeAuth)
}

// IsQuotaError checks if an error is an exhausted quota
func IsQuotaError(err error) bool {
	return isType(err, ErrTypeQuota)
}

// IsParseError checks if an error is a parsing error
func IsParseError(err error) bool {
	return isType(err, ErrTypeParse)
}

// IsNetworkError checks if an error happened before a response arrived
func IsNetworkError(err error) bool {
	return isType(err, ErrTypeNetwork) || isType(err, ErrTypeTimeout) || isType(err, ErrTypeDNS)
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var gErr *Error
	if !errors.As(err, &gErr) {
		return err.Error()
	}

	switch gErr.Type {
	case ErrTypeTimeout:
		return "Geocoding service not responding (timeout)"
	case ErrTypeDNS:
		return "Cannot resolve geocoding service hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeAuth:
		return "API key rejected by the geocoding service"
	case ErrTypeQuota:
		return "Geocoding quota exceeded"
	case ErrTypeHTTP:
		return fmt.Sprintf("Geocoding service error (HTTP %d)", gErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse geocoding response"
	default:
		return gErr.Message
	}
}

// GetTroubleshootingHints returns follow-up steps for an error
func GetTroubleshootingHints(err error) []string {
	var gErr *Error
	if !errors.As(err, &gErr) {
		return nil
	}

	switch gErr.Type {
	case ErrTypeAuth:
		return []string{
			"Check OPENCAGE_API_KEY in your environment or .env file",
			"Make sure the key has not been revoked in the OpenCage dashboard",
			"Get a key at " + urls.OpenCageSignUp,
		}
	case ErrTypeQuota:
		return []string{
			"The free tier allows 2,500 requests per day",
			"Wait for the quota to reset or upgrade the plan",
			"Rate limits: " + urls.OpenCageAPI,
		}
	case ErrTypeTimeout, ErrTypeNetwork, ErrTypeDNS:
		return []string{
			"Check your internet connection",
			"Raise geocoding.timeout in config.yaml for slow links",
		}
	case ErrTypeHTTP:
		if gErr.StatusCode >= 500 {
			return []string{
				"The geocoding service is having problems, try again later",
				"Service status: " + urls.OpenCageStatus,
			}
		}
		return []string{"Check geocoding.base_url in config.yaml"}
	case ErrTypeParse:
		return []string{"Check that geocoding.base_url points to an OpenCage-compatible API"}
	}
	return nil
}

// redact hides the API key in anything echoed back to the user.
func redact(s, key string) string {
	if key == "" {
		return s
	}
	return strings.ReplaceAll(s, key, "REDACTED")
}
