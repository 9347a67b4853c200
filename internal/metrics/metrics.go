package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Command outcomes used as the "result" label.
const (
	ResultApplied  = "applied"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics holds the Prometheus collectors of the API.
type Metrics struct {
	// Counters
	RequestsTotal *prometheus.CounterVec
	CommandsTotal *prometheus.CounterVec

	// Histograms
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests
// so instances do not collide on the default registry.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ac_commands_total",
				Help: "Total control commands by action and result",
			},
			[]string{"action", "result"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		gatherer: reg,
	}
}

// RecordRequest records one served HTTP request.
func (m *Metrics) RecordRequest(method, route, code string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, code).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordCommand records the outcome of a control command.
func (m *Metrics) RecordCommand(action, result string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(action, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
