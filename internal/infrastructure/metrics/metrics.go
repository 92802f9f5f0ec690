package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors of one process. Each instance owns its
// registry so tests can build as many as they need.
type Metrics struct {
	Registry *prometheus.Registry

	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Checks          *prometheus.CounterVec
	SessionsStarted *prometheus.CounterVec
	BanksImported   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "endpoint"},
		),
		Checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchdrill_checks_total",
				Help: "Checked answers by outcome",
			},
			[]string{"outcome"},
		),
		SessionsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchdrill_sessions_started_total",
				Help: "Started sessions by mode",
			},
			[]string{"mode"},
		),
		BanksImported: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchdrill_banks_imported_total",
				Help: "Bank import attempts by result",
			},
			[]string{"result"},
		),
	}

	m.Registry.MustRegister(
		m.RequestCounter,
		m.RequestDuration,
		m.Checks,
		m.SessionsStarted,
		m.BanksImported,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// RecordCheck is safe on a nil receiver.
func (m *Metrics) RecordCheck(correct bool) {
	if m == nil {
		return
	}
	outcome := "wrong"
	if correct {
		outcome = "correct"
	}
	m.Checks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordSession(mode string) {
	if m == nil {
		return
	}
	m.SessionsStarted.WithLabelValues(mode).Inc()
}

func (m *Metrics) RecordImport(ok bool) {
	if m == nil {
		return
	}
	result := "error"
	if ok {
		result = "ok"
	}
	m.BanksImported.WithLabelValues(result).Inc()
}
