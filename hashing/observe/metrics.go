package observe

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opMake  = "make"
	opCheck = "check"

	resultOK            = "ok"
	resultMatch         = "match"
	resultMismatch      = "mismatch"
	resultInvalidRecord = "invalid_record"
	resultError         = "error"
)

// Metrics holds the Prometheus collectors updated by [Hasher].
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors under namespace and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of hash and verify operations by outcome",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time spent deriving keys, including record parsing",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"op"}),
	}

	// Pre-create the label sets so every series is exported from the start.
	m.operations.WithLabelValues(opMake, resultOK)
	m.operations.WithLabelValues(opMake, resultError)
	m.operations.WithLabelValues(opCheck, resultMatch)
	m.operations.WithLabelValues(opCheck, resultMismatch)
	m.operations.WithLabelValues(opCheck, resultInvalidRecord)
	m.operations.WithLabelValues(opCheck, resultError)

	err := errors.Join(
		reg.Register(m.operations),
		reg.Register(m.duration),
	)
	return m, err
}

func (m *Metrics) observe(op, result string, seconds float64) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(seconds)
}
