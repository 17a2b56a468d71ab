// Package metrics defines and registers all custom Prometheus metrics for the
// rental API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// init via promauto; the registry is exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// ── Reservation metrics ───────────────────────────────────────────────────────

// ReservationsCreatedTotal counts reservations admitted as pending.
var ReservationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations successfully created.",
	},
)

// ReservationConflictsTotal counts booking attempts rejected by the
// availability check.
// Label:
//   - reason: "overlap" (a blocking reservation holds the range) or
//     "locked" (the per-car lock was held by a concurrent request)
var ReservationConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_conflicts_total",
		Help:      "Total number of reservation attempts rejected as conflicting.",
	},
	[]string{"reason"},
)

// StatusTransitionsTotal counts admin status transitions that were applied.
// Labels:
//   - from: the previous reservation status
//   - to: the new reservation status
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of applied reservation status transitions.",
	},
	[]string{"from", "to"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

// PaymentsTotal counts checkout attempts by outcome.
// Label:
//   - result: "completed", "declined" (card rejected by the gateway), or
//     "rejected" (precondition failure: wrong status, not owner, not found)
var PaymentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Total number of checkout attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// ContractsIssuedTotal counts contracts created by checkout finalization.
var ContractsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contracts_issued_total",
		Help:      "Total number of contracts issued.",
	},
)

// CheckoutDuration measures how long a checkout takes end-to-end.
// Label:
//   - result: same values as PaymentsTotal
var CheckoutDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_duration_seconds",
		Help:      "Duration of checkout from request to finalized writes.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"result"},
)
