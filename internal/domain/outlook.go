package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TropicalOutlook is the resolved Atlantic development signal. FormationChance
// is either a percentage token ("70%") or one of the descriptive tokens below.
type TropicalOutlook struct {
	OutlookText     string
	FormationChance string
}

const (
	// FormationChanceActive marks one or more named systems in the basin.
	FormationChanceActive = "Active Systems"
	// FormationChanceVisitNHC is the in-season token used when no source
	// produced data; it must never claim a numeric 0% chance.
	FormationChanceVisitNHC = "Visit NHC"
	// FormationChanceNone is the off-season quiet token.
	FormationChanceNone = "0%"
)

// excerptRadius is how much surrounding text is kept around a matched
// formation-probability figure.
const excerptRadius = 200

var (
	// chanceMatchers are tried in order; the first pattern with any match
	// wins, and the highest percentage among its matches is kept. Patterns
	// are data so new bulletin phrasings can be added without touching the
	// extraction flow.
	chanceMatchers = []*regexp.Regexp{
		// "...formation is expected... 70 percent"
		regexp.MustCompile(`(?i)formation[^.]{0,160}?(\d{1,3})\s*percent`),
		// "...disturbance 2 ... 40 percent"
		regexp.MustCompile(`(?i)disturbance\s*\d[^.]{0,160}?(\d{1,3})\s*percent`),
		// bare "40 percent"
		regexp.MustCompile(`(?i)(\d{1,3})\s*percent`),
	}

	markupTagRe   = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	percentDigits = regexp.MustCompile(`(\d{1,3})\s*(?:%|percent)`)
)

// ParsePercent parses a percentage-like token ("70%", "70 percent", "70")
// into an integer. Malformed or negative input parses as 0 and never panics;
// bad upstream data is "no signal", not an error.
func ParsePercent(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if m := percentDigits.FindStringSubmatch(s); len(m) == 2 {
		s = m[1]
	}
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ExtractFormationChance scans free bulletin text for a formation-probability
// figure. It returns the percentage, a markup-stripped excerpt of the
// surrounding text, and whether anything usable was found.
func ExtractFormationChance(text string) (int, string, bool) {
	for _, re := range chanceMatchers {
		matches := re.FindAllStringSubmatchIndex(text, -1)
		if len(matches) == 0 {
			continue
		}

		best, bestPct := matches[0], -1
		for _, m := range matches {
			pct := ParsePercent(text[m[2]:m[3]])
			if pct > bestPct {
				best, bestPct = m, pct
			}
		}
		if bestPct < 0 {
			continue
		}

		start := max(best[0]-excerptRadius, 0)
		end := min(best[1]+excerptRadius, len(text))
		return bestPct, StripMarkup(text[start:end]), true
	}
	return 0, "", false
}

// SeasonFallback is the terminal outlook when every source fails. In
// hurricane season it refuses to claim a numeric chance and directs readers
// to the NHC; off season it reports a quiet 0%.
func SeasonFallback(now time.Time) TropicalOutlook {
	if IsHurricaneSeason(now) {
		return TropicalOutlook{
			OutlookText:     "Tropical outlook data is temporarily unavailable. Visit the National Hurricane Center at hurricanes.gov for the latest Atlantic outlook.",
			FormationChance: FormationChanceVisitNHC,
		}
	}
	return TropicalOutlook{
		OutlookText:     "The Atlantic hurricane season runs June 1 through November 30. No tropical development is expected at this time.",
		FormationChance: FormationChanceNone,
	}
}

// FormatChance renders a percentage as a formation-chance token.
func FormatChance(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// Usable reports whether the outlook carries a real signal: non-empty text or
// a non-zero, possibly descriptive, formation chance.
func (o TropicalOutlook) Usable() bool {
	if strings.TrimSpace(o.OutlookText) != "" {
		return true
	}
	return o.FormationChance != "" && o.FormationChance != FormationChanceNone
}

// StripMarkup removes HTML-ish tags and collapses runs of whitespace.
func StripMarkup(s string) string {
	s = markupTagRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// TruncateText clips s to at most n runes, appending an ellipsis when cut.
func TruncateText(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
