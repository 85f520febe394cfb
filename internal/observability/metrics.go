package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the Prometheus counters and histograms for one brief run.
// Each Metrics carries its own registry: the process is a one-shot batch job,
// so metrics reach Prometheus through a Pushgateway rather than a scrape
// endpoint, and tests can create instances freely without registration
// panics.
type Metrics struct {
	AlertFetches    *prometheus.CounterVec // labels: jurisdiction, outcome={success,error}
	OutlookSources  *prometheus.CounterVec // labels: source, outcome={used,empty,error}
	ReportPublishes *prometheus.CounterVec // labels: outcome={success,error}
	RunDuration     prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates and registers all run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		AlertFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "secar_brief",
			Name:      "alert_fetches_total",
			Help:      "Alert fetch attempts by jurisdiction code and outcome.",
		}, []string{"jurisdiction", "outcome"}),
		OutlookSources: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "secar_brief",
			Name:      "outlook_sources_total",
			Help:      "Tropical outlook source consultations by source and outcome.",
		}, []string{"source", "outcome"}),
		ReportPublishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "secar_brief",
			Name:      "report_publishes_total",
			Help:      "Template publish attempts by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "secar_brief",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-compose-render-publish run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.AlertFetches,
		m.OutlookSources,
		m.ReportPublishes,
		m.RunDuration,
	)

	return m
}

// Push sends the run's metrics to a Pushgateway under the given job name.
func (m *Metrics) Push(url, job string) error {
	return push.New(url, job).Gatherer(m.registry).Add()
}
