package domain

import (
	"fmt"
	"strings"
	"time"
)

// Seasonal reminder sentences appended after the alert sentences.
const (
	heatReminderSentence     = "Heat and humidity remain a concern; stay hydrated and limit outdoor activity during peak afternoon hours. "
	seasonalReminderSentence = "Continue to monitor local forecasts for changing conditions. "
)

// Fetch-failure fallback sentences. The hot-season paragraph opens with a
// heat-advisory sentence; the cold-season paragraph opens with a generic one.
const (
	heatAdvisoryFallback = "Alert data is temporarily unavailable. Heat advisories are possible during the afternoon hours; stay hydrated and check on vulnerable neighbors. "
	coldSeasonFallback   = "Alert data is temporarily unavailable. Typical seasonal weather is expected. "
	mildWinterSentence   = "Mild trade-wind weather continues; watch for passing showers and locally gusty winds."
	winterWatchSentence  = "Monitor local forecasts for winter weather developments."
)

// thunderstormFallback is the jurisdiction-specific second sentence of the
// hot-season fetch-failure paragraph.
var thunderstormFallback = map[string]string{
	"Alabama":             "Afternoon thunderstorms with frequent lightning are common across Alabama; move indoors at the first rumble of thunder.",
	"Florida":             "Daily sea-breeze thunderstorms bring dangerous lightning to much of Florida; postpone outdoor plans when storms approach.",
	"Georgia":             "Scattered afternoon storms can produce cloud-to-ground lightning across Georgia; seek sturdy shelter when skies darken.",
	"Mississippi":         "Pop-up thunderstorms with frequent lightning develop quickly across Mississippi on hot afternoons.",
	"North Carolina":      "Mountain and coastal storms can carry dangerous lightning across North Carolina; check radar before heading out.",
	"South Carolina":      "Sea-breeze storms with cloud-to-ground lightning are common in South Carolina through the evening hours.",
	"Puerto Rico":         "Interior afternoon storms bring frequent lightning to Puerto Rico; avoid open areas and high ground.",
	"U.S. Virgin Islands": "Passing tropical downpours can produce dangerous lightning over the U.S. Virgin Islands.",
}

// mildWinterJurisdictions marks the Caribbean jurisdictions whose cold-season
// fallback describes mild weather rather than winter monitoring.
var mildWinterJurisdictions = map[string]bool{
	"Puerto Rico":         true,
	"U.S. Virgin Islands": true,
}

// Group labels, rendered in caps so the highlighter can mark them up.
const (
	labelWarnings   = "WARNINGS"
	labelWatches    = "WATCHES"
	labelAdvisories = "ADVISORIES"
)

// ComposeConditions turns one jurisdiction's alert list into its condition
// summary. fetchFailed selects the static fallback paragraph instead of the
// alert sentences. The function is pure: identical inputs and an identical
// now produce identical output.
func ComposeConditions(name string, alerts []AlertRecord, fetchFailed bool, now time.Time) string {
	hot := IsHotSeason(now)

	if fetchFailed {
		if hot {
			return heatAdvisoryFallback + thunderstormFallback[name]
		}
		if mildWinterJurisdictions[name] {
			return coldSeasonFallback + mildWinterSentence
		}
		return coldSeasonFallback + winterWatchSentence
	}

	var warnings, watches, advisories []string
	for _, a := range alerts {
		if !a.IsActive(now) {
			continue
		}
		if a.Severity == SeveritySevere || a.Severity == SeverityExtreme || strings.Contains(a.Event, "Warning") {
			warnings = appendDistinct(warnings, a.Event)
		}
		if strings.Contains(a.Event, "Watch") {
			watches = appendDistinct(watches, a.Event)
		}
		if a.Severity == SeverityModerate || strings.Contains(a.Event, "Advisory") {
			advisories = appendDistinct(advisories, a.Event)
		}
	}

	var b strings.Builder
	if len(warnings) > 0 {
		fmt.Fprintf(&b, "Active %s %s in effect. ", strings.Join(warnings, ", "), labelWarnings)
	}
	if len(watches) > 0 {
		fmt.Fprintf(&b, "%s %s in effect. ", strings.Join(watches, ", "), labelWatches)
	}
	if len(advisories) > 0 {
		fmt.Fprintf(&b, "%s %s in effect. ", strings.Join(advisories, ", "), labelAdvisories)
	}

	// The heat reminder always applies in season; the generic reminder only
	// accompanies alert sentences so a quiet off-season day stays quiet.
	if hot {
		b.WriteString(heatReminderSentence)
	} else if b.Len() > 0 {
		b.WriteString(seasonalReminderSentence)
	}

	if b.Len() == 0 {
		return fmt.Sprintf("No significant weather hazards currently affecting %s.", name)
	}
	return b.String()
}

// appendDistinct appends s unless already present, preserving first-seen order.
func appendDistinct(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
