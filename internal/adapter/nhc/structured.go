package nhc

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/franzenjb/secar-weather-brief/internal/domain"
)

// DefaultStructuredURL is the machine-readable tropical weather outlook.
const DefaultStructuredURL = "https://www.nhc.noaa.gov/xgtwo/gtwo_atl.json"

// Key spellings vary between product revisions, so field lookup is a list of
// candidates rather than a fixed struct.
var (
	twoDayKeys   = []string{"chance2day", "formationChance2Day", "twoDayChance"}
	sevenDayKeys = []string{"chance7day", "formationChance7Day", "sevenDayChance"}
	textKeys     = []string{"text", "outlookText", "discussion"}
)

// StructuredSource parses the outlook product's list of disturbance areas.
// The maximum formation probability across every area and both horizons wins,
// and all present free-text fields are concatenated.
type StructuredSource struct {
	url        string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewStructuredSource creates the structured outlook source.
func NewStructuredSource(url, userAgent string, timeout time.Duration, logger *slog.Logger) *StructuredSource {
	return &StructuredSource{
		url:        url,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (s *StructuredSource) Name() string { return "structured-outlook" }

// Fetch returns the outlook and whether it carries a usable signal.
func (s *StructuredSource) Fetch(ctx context.Context) (domain.TropicalOutlook, bool, error) {
	body, err := fetch(ctx, s.httpClient, s.url, s.userAgent)
	if err != nil {
		return domain.TropicalOutlook{}, false, err
	}

	areas := gjson.GetBytes(body, "areas")
	if !areas.Exists() {
		areas = gjson.GetBytes(body, "features")
	}

	maxPct := 0
	var texts []string
	for _, area := range areas.Array() {
		if pct := domain.ParsePercent(firstField(area, twoDayKeys)); pct > maxPct {
			maxPct = pct
		}
		if pct := domain.ParsePercent(firstField(area, sevenDayKeys)); pct > maxPct {
			maxPct = pct
		}
		if text := domain.StripMarkup(firstField(area, textKeys)); text != "" {
			texts = append(texts, text)
		}
	}

	outlook := domain.TropicalOutlook{
		OutlookText:     strings.Join(texts, " "),
		FormationChance: domain.FormatChance(maxPct),
	}
	return outlook, outlook.Usable(), nil
}

// firstField returns the first present candidate key as a string. Both
// top-level and "properties"-nested spellings are tried.
func firstField(area gjson.Result, keys []string) string {
	for _, key := range keys {
		if v := area.Get(key); v.Exists() {
			return v.String()
		}
		if v := area.Get("properties." + key); v.Exists() {
			return v.String()
		}
	}
	return ""
}
