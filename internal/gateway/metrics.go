package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK             = "ok"
	outcomeTransportError = "transport_error"
	outcomeAuthRequired   = "auth_required"
)

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

// Metrics counts endpoint calls by method and outcome.
type Metrics struct {
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the gateway collectors and registers them with reg.
// Collectors already registered under the same name are reused.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "userdesk",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Count of endpoint calls by method and outcome",
		}, []string{"method", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "userdesk",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of endpoint calls",
			Buckets:   histogramBuckets,
		}, []string{"method"}),
	}
	if reg == nil {
		return m
	}

	if err := reg.Register(m.requestTotal); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				m.requestTotal = existing
			}
		}
	}
	if err := reg.Register(m.requestDuration); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(*prometheus.HistogramVec); ok {
				m.requestDuration = existing
			}
		}
	}
	return m
}

func (m *Metrics) observe(method, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.With(prometheus.Labels{"method": method, "outcome": outcome}).Inc()
	if outcome != outcomeAuthRequired {
		m.requestDuration.With(prometheus.Labels{"method": method}).Observe(d.Seconds())
	}
}
