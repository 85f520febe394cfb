// Package nws fetches active alerts from the National Weather Service API.
package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/franzenjb/secar-weather-brief/internal/domain"
)

// DefaultBaseURL is the NWS active-alerts endpoint.
const DefaultBaseURL = "https://api.weather.gov/alerts/active"

// Client fetches active alerts for one jurisdiction at a time. The NWS API
// requires an identifying User-Agent.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an alerts client.
func NewClient(baseURL, userAgent string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ActiveAlerts returns the active alerts for a 2-letter area code. Transport
// errors, non-200 responses, and malformed payloads all surface as errors;
// the caller degrades to fallback text for that jurisdiction only.
func (c *Client) ActiveAlerts(ctx context.Context, code string) ([]domain.AlertRecord, error) {
	u := c.baseURL + "?area=" + url.QueryEscape(code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alerts request for %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("alerts API error for %s: status %d: %s", code, resp.StatusCode, body)
	}

	var payload alertsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode alerts response for %s: %w", code, err)
	}

	records := make([]domain.AlertRecord, 0, len(payload.Features))
	for _, f := range payload.Features {
		records = append(records, domain.AlertRecord{
			Event:           f.Properties.Event,
			Severity:        domain.ParseSeverity(f.Properties.Severity),
			AreaDescription: f.Properties.AreaDesc,
			ExpiresAt:       parseTimeOrZero(f.Properties.Expires),
		})
	}
	return records, nil
}

// parseTimeOrZero parses an RFC 3339 timestamp, returning the zero time on
// failure. A zero expiry is never strictly after now, so malformed expiries
// drop out of the active set rather than raising.
func parseTimeOrZero(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NWS API response types.

type alertsResponse struct {
	Features []alertFeature `json:"features"`
}

type alertFeature struct {
	Properties alertProperties `json:"properties"`
}

type alertProperties struct {
	Event    string `json:"event"`
	Severity string `json:"severity"`
	AreaDesc string `json:"areaDesc"`
	Expires  string `json:"expires"`
}
