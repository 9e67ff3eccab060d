package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/ecotrip/internal/logging"
	"github.com/muurk/ecotrip/internal/version"
)

const (
	// DefaultBaseURL is the OpenCage API root
	DefaultBaseURL = "https://api.opencagedata.com"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	geocodePath = "/geocode/v1/json"

	// maxBodySize caps how much of a response is read
	maxBodySize = 1 << 20
)

// Client performs reverse-geocoding requests
type Client struct {
	// BaseURL is the API root (e.g., "https://api.opencagedata.com")
	BaseURL string

	// APIKey is sent as the "key" query parameter
	APIKey string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for the public OpenCage API
func NewClient(apiKey string) *Client {
	return NewClientWithURL(DefaultBaseURL, apiKey)
}

// NewClientWithURL creates a client for an API at baseURL
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// ReverseURL builds the request URL for a coordinate pair
func (c *Client) ReverseURL(lat, lon float64) string {
	params := url.Values{}
	params.Set("q", Query(lat, lon))
	params.Set("key", c.APIKey)
	return c.BaseURL + geocodePath + "?" + params.Encode()
}

// Reverse looks up the addresses at a coordinate pair
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Response, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ReverseURL(lat, lon), nil)
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL, key included
		var uErr *url.Error
		if errors.As(err, &uErr) {
			uErr.URL = redact(uErr.URL, c.APIKey)
		}
		return nil, NewNetworkError("GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogGeocodeRequest(FormatCoordinate(lat), FormatCoordinate(lon), resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		var parsed Response
		if json.Unmarshal(body, &parsed) == nil && parsed.Status != nil && parsed.Status.Message != "" {
			message = parsed.Status.Message
		}
		return nil, NewHTTPError(resp.StatusCode, message)
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, NewParseError("failed to parse JSON response", err)
	}

	logging.Debug("Reverse geocode response",
		zap.Int("results", len(parsed.Results)),
		zap.Int("total_results", parsed.TotalResults),
	)

	return &parsed, nil
}

// ReverseFormatted returns the formatted address of the first result.
// found is false when the response has no usable result.
func (c *Client) ReverseFormatted(ctx context.Context, lat, lon float64) (string, bool, error) {
	resp, err := c.Reverse(ctx, lat, lon)
	if err != nil {
		return "", false, err
	}
	addr, found := resp.FirstFormatted()
	return addr, found, nil
}
