package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sagaTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sellerhub_saga_transitions_total",
		Help: "Deal saga operations by outcome.",
	}, []string{"operation", "result"})

	sideEffectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sellerhub_side_effect_failures_total",
		Help: "Post-commit side effects that could not be delivered.",
	}, []string{"kind"})
)

// ObserveSaga records the outcome of a single saga operation.
func ObserveSaga(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	sagaTransitions.WithLabelValues(operation, result).Inc()
}

// SideEffectFailure counts a dropped post-commit side effect by kind
// ("message", "notification", "token_removal").
func SideEffectFailure(kind string) {
	sideEffectFailures.WithLabelValues(kind).Inc()
}
