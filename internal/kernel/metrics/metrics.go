package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the kernel.
type Metrics struct {
	// Decision outcomes by result and role
	Decisions *prometheus.CounterVec

	// Full validate pipeline latency, decision plus audit append
	ValidateLatency prometheus.Histogram

	// Current audit log length
	AuditLogSize prometheus.Gauge
}

// New creates a Metrics instance with all kernel metrics registered.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "saint_kernel_decisions_total",
			Help: "Total kernel decisions by result and role",
		}, []string{"result", "role"}),

		ValidateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "saint_kernel_validate_duration_seconds",
			Help:    "Duration of a full validate call including audit append",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),

		AuditLogSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "saint_kernel_audit_log_entries",
			Help: "Number of entries in the append-only audit log",
		}),
	}
}

// ObserveDecision records one decision outcome and its latency.
func (m *Metrics) ObserveDecision(result, role string, latencyMS float64) {
	if m != nil {
		m.Decisions.WithLabelValues(result, role).Inc()
		m.ValidateLatency.Observe(latencyMS / 1000)
		m.AuditLogSize.Inc()
	}
}
