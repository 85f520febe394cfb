// Package pipeline orchestrates one brief-generation run: per-jurisdiction
// alert fetch and condition composition, tropical outlook resolution, report
// rendering, and publication.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/franzenjb/secar-weather-brief/internal/domain"
	"github.com/franzenjb/secar-weather-brief/internal/observability"
)

// AlertFetcher retrieves active alerts for a 2-letter jurisdiction code.
type AlertFetcher interface {
	ActiveAlerts(ctx context.Context, code string) ([]domain.AlertRecord, error)
}

// Publisher writes the rendered fragment into the target page.
type Publisher interface {
	Publish(fragment string) error
}

// Pipeline runs one complete fetch-compose-render-publish cycle.
type Pipeline struct {
	catalog   []domain.Jurisdiction
	fetcher   AlertFetcher
	resolver  *Resolver
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline over the jurisdiction catalog.
func New(catalog []domain.Jurisdiction, fetcher AlertFetcher, resolver *Resolver, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		catalog:   catalog,
		fetcher:   fetcher,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run generates and publishes the brief. Upstream data unavailability is
// absorbed by fallback text; only a publish failure is returned to the
// caller.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	now := domain.Now()

	summaries := make([]domain.JurisdictionSummary, 0, len(p.catalog))
	for _, j := range p.catalog {
		summaries = append(summaries, domain.JurisdictionSummary{
			Name:       j.Name,
			Conditions: p.composeJurisdiction(ctx, j, now),
		})
	}

	outlook := p.resolver.Resolve(ctx)
	report := domain.NewReport(now, outlook, summaries)
	fragment := domain.RenderReport(report)

	if err := p.publisher.Publish(fragment); err != nil {
		p.metrics.ReportPublishes.WithLabelValues("error").Inc()
		return fmt.Errorf("publish report: %w", err)
	}

	p.metrics.ReportPublishes.WithLabelValues("success").Inc()
	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("brief generated", "jurisdictions", len(summaries), "duration", time.Since(start))
	return nil
}

// composeJurisdiction fetches and composes one jurisdiction. A fetch failure
// is contained here: it degrades that jurisdiction to fallback text and never
// aborts the sibling iterations.
func (p *Pipeline) composeJurisdiction(ctx context.Context, j domain.Jurisdiction, now time.Time) string {
	alerts, err := p.fetcher.ActiveAlerts(ctx, j.Code)
	if err != nil {
		p.logger.Warn("alert fetch failed, using fallback text",
			"jurisdiction", j.Name, "code", j.Code, "error", err)
		p.metrics.AlertFetches.WithLabelValues(j.Code, "error").Inc()
		return domain.ComposeConditions(j.Name, nil, true, now)
	}

	p.metrics.AlertFetches.WithLabelValues(j.Code, "success").Inc()
	return domain.ComposeConditions(j.Name, alerts, false, now)
}
