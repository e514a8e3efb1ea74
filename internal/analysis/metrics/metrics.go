package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the analysis endpoints. All methods are
// nil-safe so handlers can run without metrics in tests.
type Metrics struct {
	// Latency of each analysis operation
	OperationLatency *prometheus.HistogramVec

	// Operation outcomes by operation and result
	OperationsTotal *prometheus.CounterVec

	// PII matches by severity
	PIIMatches *prometheus.CounterVec
}

// New creates a Metrics instance with all analysis metrics registered.
func New() *Metrics {
	return &Metrics{
		OperationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "complyd_analysis_duration_seconds",
			Help:    "Duration of analysis operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}), // operation: "pii_scan", "pii_redact", "compliance_check", "risk_assess", "credential_verify"

		OperationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "complyd_analysis_operations_total",
			Help: "Total analysis operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		PIIMatches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "complyd_pii_matches_total",
			Help: "Total PII matches reported by severity",
		}, []string{"severity"}),
	}
}

// ObserveLatency records the duration of one operation.
func (m *Metrics) ObserveLatency(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// IncrementOperation records an operation outcome.
func (m *Metrics) IncrementOperation(operation, outcome string) {
	if m != nil {
		m.OperationsTotal.WithLabelValues(operation, outcome).Inc()
	}
}

// AddPIIMatches records matches found at a severity.
func (m *Metrics) AddPIIMatches(severity string, count int) {
	if m != nil && count > 0 {
		m.PIIMatches.WithLabelValues(severity).Add(float64(count))
	}
}
