package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/franzenjb/secar-weather-brief/internal/adapter/nhc"
	"github.com/franzenjb/secar-weather-brief/internal/adapter/nws"
	"github.com/franzenjb/secar-weather-brief/internal/config"
	"github.com/franzenjb/secar-weather-brief/internal/domain"
	"github.com/franzenjb/secar-weather-brief/internal/observability"
	"github.com/franzenjb/secar-weather-brief/internal/pipeline"
	"github.com/franzenjb/secar-weather-brief/internal/publish"
)

func main() {
	// Optional .env for local runs; the scheduler provides real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := nws.NewClient(cfg.AlertsURL, cfg.UserAgent, cfg.HTTPTimeout, logger)

	// Source priority: structured product, free-text bulletin, RSS feed,
	// active-storm listing, then the seasonal static fallback inside the
	// resolver.
	sources := []pipeline.OutlookSource{
		nhc.NewStructuredSource(cfg.OutlookAPIURL, cfg.UserAgent, cfg.HTTPTimeout, logger),
		nhc.NewBulletinSource(cfg.OutlookTextURL, cfg.UserAgent, cfg.HTTPTimeout, logger),
		nhc.NewFeedSource(cfg.OutlookFeedURL, cfg.UserAgent, cfg.HTTPTimeout, logger),
		nhc.NewStormsSource(cfg.ActiveStormsURL, cfg.UserAgent, cfg.HTTPTimeout, logger),
	}
	resolver := pipeline.NewResolver(sources, logger, metrics)
	publisher := publish.NewFilePublisher(cfg.TemplatePath, logger)

	p := pipeline.New(domain.Catalog(), fetcher, resolver, publisher, logger, metrics)
	runErr := p.Run(ctx)

	if cfg.PushgatewayURL != "" {
		if err := metrics.Push(cfg.PushgatewayURL, "secar_weather_brief"); err != nil {
			logger.Warn("metrics push failed", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("brief generation failed", "error", runErr)
		os.Exit(1)
	}

	logger.Info("brief published", "template", cfg.TemplatePath)
}
