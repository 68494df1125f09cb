package metrics

import (
	"objectfs/core/objectclient"
	"objectfs/core/readiness"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "objectfs"

// Metrics holds the collectors for client checks.
type Metrics struct {
	readinessChecks *prometheus.CounterVec
	ready           prometheus.Gauge
	diagnosticRuns  *prometheus.CounterVec
	messages        *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		readinessChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "readiness",
			Name:      "checks_total",
			Help:      "Readiness evaluations by result and deciding step.",
		}, []string{"result", "step"}),
		ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "readiness",
			Name:      "ready",
			Help:      "1 when the last readiness evaluation succeeded.",
		}),
		diagnosticRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "diagnostics",
			Name:      "runs_total",
			Help:      "Diagnostics runs by outcome.",
		}, []string{"outcome"}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "diagnostics",
			Name:      "messages_total",
			Help:      "Diagnostics messages by severity.",
		}, []string{"severity"}),
	}

	if reg != nil {
		reg.MustRegister(m.readinessChecks, m.ready, m.diagnosticRuns, m.messages)
	}
	return m
}

// NewRegistry returns a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Observe records a readiness decision.
func (m *Metrics) Observe(d readiness.Decision) {
	result := "not_ready"
	if d.Ready {
		result = "ready"
		m.ready.Set(1)
	} else {
		m.ready.Set(0)
	}
	m.readinessChecks.WithLabelValues(result, string(d.Step)).Inc()
}

// ObserveDiagnostics records a rendered diagnostics report.
func (m *Metrics) ObserveDiagnostics(messages []objectclient.Message) {
	outcome := "passed"
	for _, msg := range messages {
		m.messages.WithLabelValues(string(msg.Severity)).Inc()
		if msg.Severity == objectclient.SeverityError || msg.Severity == objectclient.SeverityWarning {
			outcome = "failed"
		}
	}
	m.diagnosticRuns.WithLabelValues(outcome).Inc()
}

var _ readiness.Observer = (*Metrics)(nil)
