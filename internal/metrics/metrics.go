// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "committee_tracker"

// Outcome label values
const (
	OutcomeAdmitted = "admitted"
	OutcomeRejected = "rejected"
	OutcomeApplied  = "applied"
)

var (
	// AssignmentDecisions counts validator decisions by outcome and rule
	AssignmentDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignment_decisions_total",
		Help:      "Assignment proposals decided by the slot validator.",
	}, []string{"outcome", "reason"})

	// CapacityEdits counts capacity and requirement edits by outcome
	CapacityEdits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "capacity_edits_total",
		Help:      "Committee capacity and slot requirement edits.",
	}, []string{"outcome"})

	// TxRetries counts serializable transactions replayed after a conflict
	TxRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tx_retries_total",
		Help:      "Serializable transactions retried after a serialization failure or deadlock.",
	})
)

// RecordDecision increments AssignmentDecisions for one validator decision
func RecordDecision(admitted bool, reason string) {
	outcome := OutcomeRejected
	if admitted {
		outcome = OutcomeAdmitted
	}
	AssignmentDecisions.WithLabelValues(outcome, reason).Inc()
}

// RecordCapacityEdit increments CapacityEdits
func RecordCapacityEdit(applied bool) {
	outcome := OutcomeRejected
	if applied {
		outcome = OutcomeApplied
	}
	CapacityEdits.WithLabelValues(outcome).Inc()
}
