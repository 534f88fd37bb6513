package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the attendance core.
type Metrics struct {
	// Check-ins and check-outs by scan modality and outcome
	CheckIns  *prometheus.CounterVec
	CheckOuts *prometheus.CounterVec

	// Status reports appended to open sessions
	ReportsFiled prometheus.Counter

	// Alerts emitted by the compliance sweep
	ComplianceAlerts prometheus.Counter

	// Latency of calls to the external biometric matcher
	MatcherLatency prometheus.Histogram
}

// New creates a Metrics instance with all collectors registered on the default registry.
func New() *Metrics {
	return &Metrics{
		CheckIns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_attendance_check_ins_total",
			Help: "Total check-in attempts by scan modality and outcome",
		}, []string{"modality", "outcome"}),

		CheckOuts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "presence_attendance_check_outs_total",
			Help: "Total check-out attempts by scan modality and outcome",
		}, []string{"modality", "outcome"}),

		ReportsFiled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "presence_status_reports_total",
			Help: "Total status reports appended to open attendance sessions",
		}),

		ComplianceAlerts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "presence_compliance_alerts_total",
			Help: "Total missed-report alerts emitted by the compliance sweep",
		}),

		MatcherLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "presence_biometric_matcher_duration_seconds",
			Help:    "Duration of compare calls to the external biometric matcher",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementCheckIn records a check-in attempt.
func (m *Metrics) IncrementCheckIn(modality, outcome string) {
	if m != nil {
		m.CheckIns.WithLabelValues(modality, outcome).Inc()
	}
}

// IncrementCheckOut records a check-out attempt.
func (m *Metrics) IncrementCheckOut(modality, outcome string) {
	if m != nil {
		m.CheckOuts.WithLabelValues(modality, outcome).Inc()
	}
}

// IncrementReport records an appended status report.
func (m *Metrics) IncrementReport() {
	if m != nil {
		m.ReportsFiled.Inc()
	}
}

// AddComplianceAlerts records alerts emitted by one sweep.
func (m *Metrics) AddComplianceAlerts(n int) {
	if m != nil {
		m.ComplianceAlerts.Add(float64(n))
	}
}

// ObserveMatcherLatency records the duration of a matcher compare call.
func (m *Metrics) ObserveMatcherLatency(d time.Duration) {
	if m != nil {
		m.MatcherLatency.Observe(d.Seconds())
	}
}
