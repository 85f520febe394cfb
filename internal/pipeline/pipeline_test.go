package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/franzenjb/secar-weather-brief/internal/domain"
	"github.com/franzenjb/secar-weather-brief/internal/observability"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var frozenJuly = time.Date(2026, 7, 6, 12, 0, 0, 0, time.UTC)

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { domain.SetClock(nil) })
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeFetcher serves canned alerts per code and fails for codes in failures.
type fakeFetcher struct {
	alerts   map[string][]domain.AlertRecord
	failures map[string]bool
	calls    []string
}

func (f *fakeFetcher) ActiveAlerts(_ context.Context, code string) ([]domain.AlertRecord, error) {
	f.calls = append(f.calls, code)
	if f.failures[code] {
		return nil, errors.New("boom")
	}
	return f.alerts[code], nil
}

// fakeSource returns a fixed outlook result.
type fakeSource struct {
	name    string
	outlook domain.TropicalOutlook
	ok      bool
	err     error
	calls   int
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) Fetch(context.Context) (domain.TropicalOutlook, bool, error) {
	s.calls++
	return s.outlook, s.ok, s.err
}

// fakePublisher records the published fragment.
type fakePublisher struct {
	fragment string
	err      error
}

func (p *fakePublisher) Publish(fragment string) error {
	p.fragment = fragment
	return p.err
}

func newTestResolver(sources ...OutlookSource) *Resolver {
	return NewResolver(sources, testLogger(), observability.NewMetrics())
}

func TestResolver_FirstUsableSourceWins(t *testing.T) {
	first := &fakeSource{name: "first", ok: false}
	second := &fakeSource{
		name:    "second",
		outlook: domain.TropicalOutlook{OutlookText: "wave", FormationChance: "40%"},
		ok:      true,
	}
	third := &fakeSource{
		name:    "third",
		outlook: domain.TropicalOutlook{OutlookText: "never consulted", FormationChance: "90%"},
		ok:      true,
	}

	got := newTestResolver(first, second, third).Resolve(context.Background())

	assert.Equal(t, "40%", got.FormationChance)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	// Later sources are never consulted once one succeeds.
	assert.Equal(t, 0, third.calls)
}

func TestResolver_SourceErrorAdvances(t *testing.T) {
	failing := &fakeSource{name: "failing", err: errors.New("timeout")}
	working := &fakeSource{
		name:    "working",
		outlook: domain.TropicalOutlook{FormationChance: domain.FormationChanceActive},
		ok:      true,
	}

	got := newTestResolver(failing, working).Resolve(context.Background())
	assert.Equal(t, domain.FormationChanceActive, got.FormationChance)
}

func TestResolver_ExhaustionInSeason(t *testing.T) {
	freezeClock(t, frozenJuly)

	got := newTestResolver(&fakeSource{name: "only"}).Resolve(context.Background())
	assert.Equal(t, domain.FormationChanceVisitNHC, got.FormationChance)
}

func TestResolver_ExhaustionOffSeason(t *testing.T) {
	freezeClock(t, time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC))

	got := newTestResolver(&fakeSource{name: "only"}).Resolve(context.Background())
	assert.Equal(t, "0%", got.FormationChance)
}

func TestPipeline_Run(t *testing.T) {
	freezeClock(t, frozenJuly)

	fetcher := &fakeFetcher{
		alerts: map[string][]domain.AlertRecord{
			"FL": {{Event: "Hurricane Warning", Severity: domain.SeverityExtreme, ExpiresAt: frozenJuly.Add(time.Hour)}},
		},
		failures: map[string]bool{"GA": true},
	}
	source := &fakeSource{
		name:    "structured",
		outlook: domain.TropicalOutlook{OutlookText: "A tropical wave.", FormationChance: "40%"},
		ok:      true,
	}
	publisher := &fakePublisher{}

	p := New(domain.Catalog(), fetcher, newTestResolver(source), publisher, testLogger(), observability.NewMetrics())
	require.NoError(t, p.Run(context.Background()))

	// Every jurisdiction fetched, in catalog order.
	assert.Equal(t, []string{"AL", "FL", "GA", "MS", "NC", "SC", "PR", "VI"}, fetcher.calls)

	frag := publisher.fragment
	assert.Contains(t, frag, "Active Hurricane Warning")
	// Georgia's fetch failure degrades to fallback text without aborting the run.
	assert.Contains(t, frag, "Alert data is temporarily unavailable.")
	assert.Contains(t, frag, "A tropical wave.")

	// Output follows catalog order regardless of fetch outcomes.
	idxFL := strings.Index(frag, "<strong>Florida:")
	idxGA := strings.Index(frag, "<strong>Georgia:")
	idxVI := strings.Index(frag, "<strong>U.S. Virgin Islands:")
	require.NotEqual(t, -1, idxFL)
	require.NotEqual(t, -1, idxGA)
	require.NotEqual(t, -1, idxVI)
	assert.Less(t, idxFL, idxGA)
	assert.Less(t, idxGA, idxVI)
}

func TestPipeline_AllFetchesFailStillPublishes(t *testing.T) {
	freezeClock(t, frozenJuly)

	fetcher := &fakeFetcher{failures: map[string]bool{
		"AL": true, "FL": true, "GA": true, "MS": true,
		"NC": true, "SC": true, "PR": true, "VI": true,
	}}
	publisher := &fakePublisher{}

	p := New(domain.Catalog(), fetcher, newTestResolver(&fakeSource{name: "down"}), publisher, testLogger(), observability.NewMetrics())
	require.NoError(t, p.Run(context.Background()))

	assert.Contains(t, publisher.fragment, "Visit NHC")
	assert.Equal(t, 8, strings.Count(publisher.fragment, "Alert data is temporarily unavailable."))
}

func TestPipeline_PublishFailureIsFatal(t *testing.T) {
	freezeClock(t, frozenJuly)

	publisher := &fakePublisher{err: errors.New("disk full")}
	p := New(domain.Catalog(), &fakeFetcher{}, newTestResolver(&fakeSource{name: "down"}), publisher, testLogger(), observability.NewMetrics())

	err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish report")
}
