package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight_WrapsEachTargetOnce(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"warnings keyword",
			"Active Tornado Warning WARNINGS in effect. ",
			`Active Tornado Warning <span class="hazard hazard-warning">WARNINGS</span> in effect. `,
		},
		{
			"frequent lightning",
			"storms with frequent lightning today",
			`storms with <em class="lightning">frequent lightning</em> today`,
		},
		{
			"cloud-to-ground lightning",
			"producing cloud-to-ground lightning",
			`producing <em class="lightning">cloud-to-ground lightning</em>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.input))
		})
	}
}

func TestHighlight_AdjacentTargetsNoDoubleWrap(t *testing.T) {
	got := Highlight("WARNINGS with frequent lightning expected")

	assert.Equal(t, 1, strings.Count(got, `<em class="lightning">frequent lightning</em>`))
	assert.Equal(t, 1, strings.Count(got, `<span class="hazard hazard-warning">WARNINGS</span>`))
	assert.NotContains(t, got, "<em><em")
	assert.NotContains(t, got, "<span><span")
}

func TestNewReport_Labels(t *testing.T) {
	now := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	r := NewReport(now, TropicalOutlook{}, nil)

	// 18:00 UTC on Aug 24 is 2:00 PM EDT.
	assert.Contains(t, r.CheckTimeLabel, "Monday, August 24, 2026")
	assert.Equal(t, "Monday, August 24, 2026 through Friday, August 28, 2026", r.DateRangeLabel)
}

func TestRenderReport_FullFragment(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, 7, 6, 12, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	now := Now()
	summaries := []JurisdictionSummary{
		{Name: "Florida", Conditions: "Active Hurricane Warning WARNINGS in effect. "},
		{Name: "Georgia", Conditions: "No significant weather hazards currently affecting Georgia."},
	}
	outlook := TropicalOutlook{OutlookText: "A tropical wave is being monitored.", FormationChance: "40%"}

	fragment := RenderReport(NewReport(now, outlook, summaries))

	assert.Contains(t, fragment, "Conditions checked: Monday, July 6, 2026")
	assert.Contains(t, fragment, "5-Day Outlook: Monday, July 6, 2026 through Friday, July 10, 2026")
	assert.Contains(t, fragment, "A tropical wave is being monitored.")
	assert.Contains(t, fragment, `<span class="chance-badge">40%</span>`)
	assert.Contains(t, fragment, `<span class="hazard hazard-warning">WARNINGS</span>`)
	assert.Contains(t, fragment, "<strong>Florida:</strong>")
	assert.Contains(t, fragment, "Recommendations")
	assert.Contains(t, fragment, "National Hurricane Center")

	// Jurisdictions render in the order given.
	require.Less(t, strings.Index(fragment, "Florida"), strings.Index(fragment, "Georgia"))
}

func TestRenderReport_EmptyOutlookPlaceholders(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	fragment := RenderReport(NewReport(now, TropicalOutlook{}, nil))

	assert.Contains(t, fragment, "Tropical outlook not available.")
	assert.Contains(t, fragment, `<span class="chance-badge">N/A</span>`)
}
