package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sicko7947/claimflow"
)

// OutcomeOK labels a successful command
const OutcomeOK = "ok"

// Metrics counts claim commands by method and outcome. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
}

// NewMetrics creates the engine collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "claimflow",
			Name:      "operations_total",
			Help:      "Claim commands processed, by method and outcome.",
		}, []string{"method", "outcome"}),
	}
	if err := reg.Register(m.operations); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(method string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = claimflow.ErrorCode(err)
		if outcome == "" {
			outcome = "unknown"
		}
	}
	m.operations.WithLabelValues(method, outcome).Inc()
}
