package nhc

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/antchfx/htmlquery"

	"github.com/franzenjb/secar-weather-brief/internal/domain"
)

// DefaultBulletinURL is the Atlantic Tropical Weather Outlook product page.
const DefaultBulletinURL = "https://www.nhc.noaa.gov/text/MIATWOAT.shtml"

// BulletinSource scrapes the free-text outlook bulletin. The product body
// lives in a <pre> block on the page; the domain matcher list then hunts for
// a formation-probability figure in the raw text.
type BulletinSource struct {
	url        string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewBulletinSource creates the free-text bulletin source.
func NewBulletinSource(url, userAgent string, timeout time.Duration, logger *slog.Logger) *BulletinSource {
	return &BulletinSource{
		url:        url,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (b *BulletinSource) Name() string { return "text-bulletin" }

// Fetch returns the outlook extracted from the bulletin text.
func (b *BulletinSource) Fetch(ctx context.Context) (domain.TropicalOutlook, bool, error) {
	body, err := fetch(ctx, b.httpClient, b.url, b.userAgent)
	if err != nil {
		return domain.TropicalOutlook{}, false, err
	}

	text, err := bulletinText(body)
	if err != nil {
		return domain.TropicalOutlook{}, false, err
	}

	pct, excerpt, ok := domain.ExtractFormationChance(text)
	if !ok {
		return domain.TropicalOutlook{}, false, nil
	}
	return domain.TropicalOutlook{
		OutlookText:     excerpt,
		FormationChance: domain.FormatChance(pct),
	}, true, nil
}

// bulletinText pulls the product body out of the page. Prefers <pre> blocks;
// falls back to the whole document text when the page layout changes.
func bulletinText(body []byte) (string, error) {
	doc, err := htmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse bulletin page: %w", err)
	}

	nodes, err := htmlquery.QueryAll(doc, "//pre")
	if err != nil {
		return "", fmt.Errorf("query bulletin page: %w", err)
	}

	if len(nodes) == 0 {
		return htmlquery.InnerText(doc), nil
	}

	var parts []string
	for _, n := range nodes {
		parts = append(parts, htmlquery.InnerText(n))
	}
	return strings.Join(parts, "\n"), nil
}
