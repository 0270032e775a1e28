// Package metrics defines the Prometheus collectors for the catalog and
// exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query kinds used as label values.
const (
	KindCategory = "category"
	KindSchool   = "school"
	KindSearch   = "search"
	KindAdd      = "add_course"
)

// Query outcomes used as label values.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Metrics holds all Prometheus collectors for the catalog. Each instance owns
// its own registry so several catalogs can coexist in one process (tests).
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	QueriesTotal         *prometheus.CounterVec
	QueryLatency         *prometheus.HistogramVec
	QueryResultsCount    *prometheus.HistogramVec
	CoursesAddedTotal    prometheus.Counter
}

// New creates and registers all catalog metrics. courseCount is sampled on
// every scrape to report the number of indexed courses.
func New(courseCount func() int) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_queries_total",
				Help: "Total catalog operations by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		QueryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_query_latency_seconds",
				Help:    "Catalog operation latency in seconds.",
				Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"kind"},
		),
		QueryResultsCount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_query_results_count",
				Help:    "Number of courses returned per query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
			},
			[]string{"kind"},
		),
		CoursesAddedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_courses_added_total",
				Help: "Total courses added after the bulk load.",
			},
		),
	}

	coursesIndexed := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "catalog_courses_indexed",
			Help: "Number of courses currently held by the category index.",
		},
		func() float64 { return float64(courseCount()) },
	)

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.QueriesTotal,
		m.QueryLatency,
		m.QueryResultsCount,
		m.CoursesAddedTotal,
		coursesIndexed,
	)

	return m
}

// ObserveQuery records one catalog operation.
func (m *Metrics) ObserveQuery(kind, outcome string, started time.Time, results int) {
	m.QueriesTotal.WithLabelValues(kind, outcome).Inc()
	m.QueryLatency.WithLabelValues(kind).Observe(time.Since(started).Seconds())
	if outcome == OutcomeOK || outcome == OutcomeEmpty {
		m.QueryResultsCount.WithLabelValues(kind).Observe(float64(results))
	}
}

// Registry returns the registry holding the catalog collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus scrape HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
