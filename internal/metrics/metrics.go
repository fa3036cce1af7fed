// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Inbound HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkhub_http_requests_total",
		Help: "Total number of HTTP requests served.",
	}, []string{"method", "route", "status"})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linkhub_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Backend traffic
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkhub_upstream_requests_total",
		Help: "Total number of requests sent to the backend API.",
	}, []string{"endpoint", "result"}) // result: "2xx", "4xx", "5xx", "network_error"
	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linkhub_upstream_request_duration_seconds",
		Help:    "Duration of backend API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	// Form usage
	FormSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkhub_form_submissions_total",
		Help: "Total number of form submissions by outcome.",
	}, []string{"form", "outcome"}) // outcome: "success", "error", "invalid", "skipped", "in_flight"

	// Sessions
	SessionsEstablishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkhub_sessions_established_total",
		Help: "Total number of sessions established from host init data.",
	}, []string{"status"}) // status: "identified", "anonymous", "rejected"

	// Catalog
	CatalogReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkhub_catalog_reloads_total",
		Help: "Total number of link catalog reloads.",
	}, []string{"status"})
	CatalogLinks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "linkhub_catalog_links",
		Help: "Number of visible links in the catalog.",
	})
)

// ObserveUpstream records one backend call.
func ObserveUpstream(endpoint, result string, d time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, result).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// ObserveForm records one form submission outcome.
func ObserveForm(form, outcome string) {
	FormSubmissionsTotal.WithLabelValues(form, outcome).Inc()
}
