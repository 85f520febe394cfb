package pipeline

import (
	"context"
	"log/slog"

	"github.com/franzenjb/secar-weather-brief/internal/domain"
	"github.com/franzenjb/secar-weather-brief/internal/observability"
)

// OutlookSource is one tropical-outlook strategy. Fetch reports whether the
// result is usable; an error means the source could not be consulted at all.
type OutlookSource interface {
	Name() string
	Fetch(ctx context.Context) (domain.TropicalOutlook, bool, error)
}

// Resolver walks an ordered source list and returns the first usable outlook.
// Later sources are never consulted once one succeeds, and results are never
// merged across sources. Resolution cannot fail: exhaustion yields the
// season-appropriate static fallback.
type Resolver struct {
	sources []OutlookSource
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewResolver creates a resolver over the given source order.
func NewResolver(sources []OutlookSource, logger *slog.Logger, metrics *observability.Metrics) *Resolver {
	return &Resolver{
		sources: sources,
		logger:  logger,
		metrics: metrics,
	}
}

// Resolve returns the tropical outlook for the current run.
func (r *Resolver) Resolve(ctx context.Context) domain.TropicalOutlook {
	for _, source := range r.sources {
		outlook, ok, err := source.Fetch(ctx)
		if err != nil {
			r.logger.Warn("outlook source failed, trying next", "source", source.Name(), "error", err)
			r.metrics.OutlookSources.WithLabelValues(source.Name(), "error").Inc()
			continue
		}
		if !ok {
			r.logger.Debug("outlook source returned no usable signal", "source", source.Name())
			r.metrics.OutlookSources.WithLabelValues(source.Name(), "empty").Inc()
			continue
		}

		r.logger.Info("tropical outlook resolved",
			"source", source.Name(), "formation_chance", outlook.FormationChance)
		r.metrics.OutlookSources.WithLabelValues(source.Name(), "used").Inc()
		return outlook
	}

	r.logger.Warn("all outlook sources exhausted, using seasonal fallback")
	r.metrics.OutlookSources.WithLabelValues("seasonal-fallback", "used").Inc()
	return domain.SeasonFallback(domain.Now())
}
