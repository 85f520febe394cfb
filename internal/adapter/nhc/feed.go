package nhc

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/franzenjb/secar-weather-brief/internal/domain"
)

// DefaultFeedURL is the NHC Atlantic basin RSS feed.
const DefaultFeedURL = "https://www.nhc.noaa.gov/index-at.xml"

// feedDescriptionLimit caps how much of a feed entry is kept as outlook text.
const feedDescriptionLimit = 400

type rssFeed struct {
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// FeedSource scans the RSS feed for entries mentioning the tropical outlook
// and keeps the entry carrying the highest formation percentage.
type FeedSource struct {
	url        string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFeedSource creates the RSS feed source.
func NewFeedSource(url, userAgent string, timeout time.Duration, logger *slog.Logger) *FeedSource {
	return &FeedSource{
		url:        url,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (f *FeedSource) Name() string { return "rss-feed" }

// Fetch returns the best outlook entry found in the feed.
func (f *FeedSource) Fetch(ctx context.Context) (domain.TropicalOutlook, bool, error) {
	body, err := fetch(ctx, f.httpClient, f.url, f.userAgent)
	if err != nil {
		return domain.TropicalOutlook{}, false, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return domain.TropicalOutlook{}, false, fmt.Errorf("decode feed: %w", err)
	}

	bestPct := -1
	var bestItem rssItem
	for _, item := range feed.Channel.Items {
		content := strings.ToLower(item.Title + " " + item.Description)
		if !strings.Contains(content, "tropical") && !strings.Contains(content, "outlook") {
			continue
		}
		pct, _, ok := domain.ExtractFormationChance(item.Title + " " + item.Description)
		if !ok {
			continue
		}
		if pct > bestPct {
			bestPct = pct
			bestItem = item
		}
	}

	if bestPct < 0 {
		return domain.TropicalOutlook{}, false, nil
	}

	outlook := domain.TropicalOutlook{
		OutlookText:     domain.TruncateText(domain.StripMarkup(bestItem.Description), feedDescriptionLimit),
		FormationChance: domain.FormatChance(bestPct),
	}
	return outlook, outlook.Usable(), nil
}
