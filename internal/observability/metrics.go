// Package observability holds the Prometheus metrics of the server.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "climate_intel"

// Metrics holds the Prometheus counters and histograms of the server.
type Metrics struct {
	// HTTP metrics. labels: method, route, status
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Climate metrics.
	ClimateCache        *prometheus.CounterVec // labels: result={hit,miss,error}
	ScenarioSimulations prometheus.Counter

	// Relay metrics.
	ChatRequests            *prometheus.CounterVec // labels: outcome={success,error}
	RecommendationFallbacks prometheus.Counter

	// Background and messaging metrics.
	EventsPublished *prometheus.CounterVec // labels: outcome={success,error}
	OTPPurged       prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	m.MustRegister(prometheus.DefaultRegisterer)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build many
// instances without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// NewUnregisteredMetrics creates metrics that are counted but never exported.
// Components given nil metrics fall back to it.
func NewUnregisteredMetrics() *Metrics {
	return newMetrics()
}

// MustRegister registers every collector with r.
func (m *Metrics) MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.ClimateCache,
		m.ScenarioSimulations,
		m.ChatRequests,
		m.RecommendationFallbacks,
		m.EventsPublished,
		m.OTPPurged,
	)
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by method and route pattern.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "route"}),
		ClimateCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "climate_cache_total",
			Help:      "Climate data cache lookups by result.",
		}, []string{"result"}),
		ScenarioSimulations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenario_simulations_total",
			Help:      "Scenario simulations served.",
		}),
		ChatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Chat relay requests by outcome.",
		}, []string{"outcome"}),
		RecommendationFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_fallbacks_total",
			Help:      "Recommendations answered with the static fallback.",
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessment_events_total",
			Help:      "Assessment events handed to the publisher by outcome.",
		}, []string{"outcome"}),
		OTPPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_registrations_purged_total",
			Help:      "Unverified registrations removed after their OTP expired.",
		}),
	}
}
