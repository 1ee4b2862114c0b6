package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Poliform
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	PartiesCreatedTotal prometheus.Counter
	ApplicationsTotal   prometheus.CounterVec
	SupportTogglesTotal prometheus.CounterVec
	ErrorLogWritesTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "poliform_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "poliform_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "poliform_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "poliform_cache_hits_total",
				Help: "Cache hits by cache key prefix",
			},
			[]string{"prefix"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "poliform_cache_misses_total",
				Help: "Cache misses by cache key prefix",
			},
			[]string{"prefix"},
		),

		PartiesCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "poliform_parties_created_total",
				Help: "Total parties created",
			},
		),
		ApplicationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "poliform_membership_applications_total",
				Help: "Membership lifecycle transitions by outcome",
			},
			[]string{"outcome"},
		),
		SupportTogglesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "poliform_support_toggles_total",
				Help: "Support toggles by resulting state",
			},
			[]string{"state"},
		),
		ErrorLogWritesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "poliform_error_log_writes_total",
				Help: "Best-effort error log writes by result",
			},
			[]string{"result"},
		),
	}
}
