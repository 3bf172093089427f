// Package metrics exposes Prometheus instrumentation for the counters
// service: per-operation outcomes, the number of live counters and HTTP
// request latency.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation results recorded in the "result" label.
const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Collector owns its own registry so several collectors can coexist in one
// process (tests, embedded servers).
type Collector struct {
	registry *prometheus.Registry

	operations      *prometheus.CounterVec
	activeCounters  prometheus.Gauge
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector with process and Go runtime collectors
// registered alongside the service metrics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "counters_operations_total",
				Help: "Total number of counter operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		activeCounters: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "counters_active",
				Help: "Number of counters currently registered",
			},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "counters_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// RecordOperation counts one registry operation with its outcome.
func (c *Collector) RecordOperation(operation, result string) {
	c.operations.WithLabelValues(operation, result).Inc()
}

// CounterCreated increments the active counters gauge.
func (c *Collector) CounterCreated() {
	c.activeCounters.Inc()
}

// CounterDeleted decrements the active counters gauge.
func (c *Collector) CounterDeleted() {
	c.activeCounters.Dec()
}

// ObserveRequest records the latency of a finished HTTP request.
func (c *Collector) ObserveRequest(method, route, status string, d time.Duration) {
	c.requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// Handler serves the collector's registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
