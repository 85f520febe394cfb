package nhc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/franzenjb/secar-weather-brief/internal/domain"
)

// DefaultStormsURL lists the currently active named systems.
const DefaultStormsURL = "https://www.nhc.noaa.gov/CurrentStorms.json"

type stormsResponse struct {
	ActiveStorms []activeStorm `json:"activeStorms"`
}

type activeStorm struct {
	Name           string `json:"name"`
	Classification string `json:"classification"`
	Basin          string `json:"binNumber"`
}

// StormsSource reports named active systems. When any exist, the formation
// chance is the fixed "Active Systems" token regardless of numeric
// probability elsewhere.
type StormsSource struct {
	url        string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewStormsSource creates the active-storm listing source.
func NewStormsSource(url, userAgent string, timeout time.Duration, logger *slog.Logger) *StormsSource {
	return &StormsSource{
		url:        url,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (s *StormsSource) Name() string { return "active-storms" }

// Fetch returns a composed sentence naming the active systems, if any.
func (s *StormsSource) Fetch(ctx context.Context) (domain.TropicalOutlook, bool, error) {
	body, err := fetch(ctx, s.httpClient, s.url, s.userAgent)
	if err != nil {
		return domain.TropicalOutlook{}, false, err
	}

	var payload stormsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.TropicalOutlook{}, false, fmt.Errorf("decode storm listing: %w", err)
	}

	var names []string
	for _, storm := range payload.ActiveStorms {
		if name := strings.TrimSpace(storm.Name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return domain.TropicalOutlook{}, false, nil
	}

	plural := "system is"
	if len(names) > 1 {
		plural = "systems are"
	}
	return domain.TropicalOutlook{
		OutlookText: fmt.Sprintf("Active named %s being tracked in the Atlantic basin: %s. See the National Hurricane Center for the latest advisories.",
			plural, strings.Join(names, ", ")),
		FormationChance: domain.FormationChanceActive,
	}, true, nil
}
