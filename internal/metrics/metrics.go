package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SizingMetrics collects prometheus metrics about sizing decisions.
// A nil *SizingMetrics is valid and records nothing.
type SizingMetrics struct {
	decisions   *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
	deposits    prometheus.Counter
	deposited   prometheus.Counter
	shrinkSteps prometheus.Histogram
}

// NewSizingMetrics creates the metrics and registers them on reg.
func NewSizingMetrics(reg prometheus.Registerer) (*SizingMetrics, error) {
	m := &SizingMetrics{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argo_sizing_decisions_total",
				Help: "Total number of sizing decisions by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argo_sizing_diagnostics_total",
				Help: "Total number of reported sizing failures by class",
			},
			[]string{"class"},
		),
		deposits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "argo_sizing_auto_fund_deposits_total",
				Help: "Total number of cash deposits issued by auto-fund",
			},
		),
		deposited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "argo_sizing_auto_fund_deposited_cash",
				Help: "Total cash deposited by auto-fund",
			},
		),
		shrinkSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "argo_sizing_shrink_steps",
				Help:    "Number of lot decrements needed to make a buy affordable",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.decisions, m.diagnostics, m.deposits, m.deposited, m.shrinkSteps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordDecision counts a returned quantity. outcome is "exact", "zero" or "full_position".
func (m *SizingMetrics) RecordDecision(operation string, outcome string) {
	if m == nil {
		return
	}

	m.decisions.WithLabelValues(operation, outcome).Inc()
}

// RecordDiagnostic counts a reported failure.
func (m *SizingMetrics) RecordDiagnostic(class string) {
	if m == nil {
		return
	}

	m.diagnostics.WithLabelValues(class).Inc()
}

// RecordDeposit counts an auto-fund deposit of amount.
func (m *SizingMetrics) RecordDeposit(amount float64) {
	if m == nil {
		return
	}

	m.deposits.Inc()
	m.deposited.Add(amount)
}

// RecordShrinkSteps observes how many lots the cash check removed.
func (m *SizingMetrics) RecordShrinkSteps(steps int) {
	if m == nil {
		return
	}

	m.shrinkSteps.Observe(float64(steps))
}
