// Package metrics exposes Prometheus instruments for the admin API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry so tests and multiple routers never collide
type Metrics struct {
	Registry *prometheus.Registry

	// CollectionSubmissions counts form submissions by mode (create|update)
	// and outcome (success|invalid|failed|busy)
	CollectionSubmissions *prometheus.CounterVec

	// NotificationsShown counts notifications by category
	NotificationsShown *prometheus.CounterVec

	// RequestDuration tracks HTTP latency per route
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all instruments
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CollectionSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collection_submissions_total",
				Help: "Collection form submissions by mode and outcome.",
			},
			[]string{"mode", "outcome"},
		),
		NotificationsShown: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_shown_total",
				Help: "Notifications emitted to the dashboard.",
			},
			[]string{"category"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.Registry.MustRegister(
		m.CollectionSubmissions,
		m.NotificationsShown,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
