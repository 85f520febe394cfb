package domain

import "time"

// longDateLayout is the long-form date used for the 5-day range line.
const longDateLayout = "Monday, January 2, 2006"

// eastern is the display zone for the check-time line. Falls back to a fixed
// UTC-5 zone when the tz database is unavailable.
var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("ET", -5*60*60)
	}
	return loc
}()

// JurisdictionSummary pairs a jurisdiction name with its composed condition
// text, in catalog order.
type JurisdictionSummary struct {
	Name       string
	Conditions string
}

// Report is the full brief for one run. Built fresh per invocation, rendered
// once, then discarded.
type Report struct {
	CheckTimeLabel string
	DateRangeLabel string
	Outlook        TropicalOutlook
	Summaries      []JurisdictionSummary
}

// NewReport assembles a report for the given instant. Summaries must already
// be in catalog order.
func NewReport(now time.Time, outlook TropicalOutlook, summaries []JurisdictionSummary) Report {
	return Report{
		CheckTimeLabel: now.In(eastern).Format("Monday, January 2, 2006 at 3:04 PM MST"),
		DateRangeLabel: now.Format(longDateLayout) + " through " + now.AddDate(0, 0, 4).Format(longDateLayout),
		Outlook:        outlook,
		Summaries:      summaries,
	}
}
