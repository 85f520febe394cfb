package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/franzenjb/secar-weather-brief/internal/adapter/nhc"
	"github.com/franzenjb/secar-weather-brief/internal/adapter/nws"
)

// Config holds all settings, populated from environment variables.
type Config struct {
	AlertsURL       string
	OutlookAPIURL   string
	OutlookTextURL  string
	OutlookFeedURL  string
	ActiveStormsURL string

	UserAgent    string
	HTTPTimeout  time.Duration
	TemplatePath string

	LogLevel  string
	LogFormat string

	// PushgatewayURL enables a one-shot metrics push at end of run when set.
	PushgatewayURL string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeout, err := getEnvDuration("HTTP_TIMEOUT", nhc.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AlertsURL:       getEnv("NWS_ALERTS_URL", nws.DefaultBaseURL),
		OutlookAPIURL:   getEnv("NHC_OUTLOOK_API_URL", nhc.DefaultStructuredURL),
		OutlookTextURL:  getEnv("NHC_OUTLOOK_TEXT_URL", nhc.DefaultBulletinURL),
		OutlookFeedURL:  getEnv("NHC_OUTLOOK_FEED_URL", nhc.DefaultFeedURL),
		ActiveStormsURL: getEnv("NHC_ACTIVE_STORMS_URL", nhc.DefaultStormsURL),
		UserAgent:       getEnv("NWS_USER_AGENT", "secar-weather-brief/1.0 (github.com/franzenjb/secar-weather-brief)"),
		HTTPTimeout:     timeout,
		TemplatePath:    getEnv("TEMPLATE_PATH", "index.html"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		PushgatewayURL:  os.Getenv("PUSHGATEWAY_URL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for name, v := range map[string]string{
		"NWS_ALERTS_URL":        c.AlertsURL,
		"NHC_OUTLOOK_API_URL":   c.OutlookAPIURL,
		"NHC_OUTLOOK_TEXT_URL":  c.OutlookTextURL,
		"NHC_OUTLOOK_FEED_URL":  c.OutlookFeedURL,
		"NHC_ACTIVE_STORMS_URL": c.ActiveStormsURL,
	} {
		if v == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	if c.TemplatePath == "" {
		return errors.New("TEMPLATE_PATH must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %s", c.LogFormat)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
