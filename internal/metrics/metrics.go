// Package metrics exposes Prometheus collectors for proration calculations and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caportal/prorate-calculator/internal/domain"
)

const (
	metricPrefix = "prorate_"

	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics owns a registry so several servers (and tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	calculations     *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
	batchSize        prometheus.Histogram
}

// New registers every collector on a fresh registry, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculations_total",
				Help: "Total proration calculations by result",
			},
			[]string{"result"},
		),
		validationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "validation_errors_total",
				Help: "Total rejected calculations by error kind",
			},
			[]string{"kind"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		batchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "batch_size",
				Help:    "Number of calculations per batch",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
	m.registry.MustRegister(
		m.calculations,
		m.validationErrors,
		m.httpRequests,
		m.httpLatency,
		m.batchSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveCalculation counts one calculation outcome.
func (m *Metrics) ObserveCalculation(err error) {
	if m == nil {
		return
	}
	if err == nil {
		m.calculations.WithLabelValues(ResultSuccess).Inc()
		return
	}
	m.calculations.WithLabelValues(ResultError).Inc()
	kind := string(domain.KindOf(err))
	if kind == "" {
		kind = "internal"
	}
	m.validationErrors.WithLabelValues(kind).Inc()
}

// ObserveReport counts every entry of a report and records the batch size.
func (m *Metrics) ObserveReport(report *domain.ProrationReport) {
	if m == nil || report == nil {
		return
	}
	m.batchSize.Observe(float64(len(report.Entries)))
	for _, e := range report.Entries {
		m.ObserveCalculation(e.Err)
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}
