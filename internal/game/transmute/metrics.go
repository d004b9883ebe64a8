package transmute

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels для activationsTotal.
const (
	outcomeRejected  = "rejected"
	outcomeExhausted = "exhausted"
	outcomeUpgrade   = "upgrade"
	outcomeDowngrade = "downgrade"
	outcomeEmpower   = "empower"
)

var (
	activationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "la2forge",
		Subsystem: "transmute",
		Name:      "activations_total",
		Help:      "Transmute activations by final outcome.",
	}, []string{"outcome"})

	replacementFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "la2forge",
		Subsystem: "transmute",
		Name:      "replacement_failures_total",
		Help:      "In-place item replacements that failed verification, by inventory result code.",
	}, []string{"reason"})

	modifiersRolled = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "la2forge",
		Subsystem: "transmute",
		Name:      "modifiers_per_empower",
		Help:      "Modifier count applied per empower outcome.",
		Buckets:   []float64{1, 2, 3},
	})
)
