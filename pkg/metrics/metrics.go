package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the per-session checker metrics
type Metrics struct {
	Registry  *prometheus.Registry
	namespace string

	Evaluations        prometheus.Counter
	RuleFailures       *prometheus.CounterVec
	StrongVerdicts     prometheus.Counter
	EvaluationDuration prometheus.Histogram
}

// Summary is a point-in-time read of the counters.
type Summary struct {
	Evaluations  int
	Strong       int
	RuleFailures map[string]int
}

// New creates the checker metrics on a private registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		Registry:  prometheus.NewRegistry(),
		namespace: namespace,
		Evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of password candidates evaluated",
		}),
		RuleFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_failures_total",
			Help:      "Total number of unmet rules by rule name",
		}, []string{"rule"}),
		StrongVerdicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strong_total",
			Help:      "Total number of evaluations that reported a strong password",
		}),
		EvaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating one candidate",
			Buckets:   []float64{.00001, .0001, .001, .01, .1},
		}),
	}

	m.Registry.MustRegister(m.Evaluations, m.RuleFailures, m.StrongVerdicts, m.EvaluationDuration)
	return m
}

// Snapshot gathers the registry into a Summary.
func (m *Metrics) Snapshot() (Summary, error) {
	s := Summary{RuleFailures: make(map[string]int)}

	families, err := m.Registry.Gather()
	if err != nil {
		return s, err
	}

	var (
		evaluations  = prometheus.BuildFQName(m.namespace, "", "evaluations_total")
		strong       = prometheus.BuildFQName(m.namespace, "", "strong_total")
		ruleFailures = prometheus.BuildFQName(m.namespace, "", "rule_failures_total")
	)

	for _, mf := range families {
		name := mf.GetName()
		for _, metric := range mf.GetMetric() {
			value := int(metric.GetCounter().GetValue())
			switch name {
			case evaluations:
				s.Evaluations = value
			case strong:
				s.Strong = value
			case ruleFailures:
				for _, lp := range metric.GetLabel() {
					if lp.GetName() == "rule" {
						s.RuleFailures[lp.GetValue()] = value
					}
				}
			}
		}
	}
	return s, nil
}
