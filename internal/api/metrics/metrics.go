// Package metrics defines and registers all custom Prometheus metrics for the
// care learning platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carelearn"

// ── Action metrics ────────────────────────────────────────────────────────────

// ActionsTotal counts domain action envelopes by outcome.
// Labels:
//   - action: dotted action name (e.g. "mood.log", "program.create")
//   - result: "success", "invalid", "unauthenticated", "denied", or "error"
var ActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Total number of domain action invocations, by action and result.",
	},
	[]string{"action", "result"},
)

// ActionDuration measures how long a single action takes end-to-end.
// Label:
//   - action: dotted action name
var ActionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "action_duration_seconds",
		Help:      "Duration of domain actions from dispatch to envelope.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// MoodEntriesRecordedTotal counts successfully recorded mood entries.
// Label:
//   - mood_type: one of the seven mood types
var MoodEntriesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mood_entries_recorded_total",
		Help:      "Total number of mood entries recorded, by mood type.",
	},
	[]string{"mood_type"},
)

// EnrollmentsCreatedTotal counts successful patient enrollments.
var EnrollmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_created_total",
		Help:      "Total number of patient enrollments created.",
	},
)

// AuthFailuresTotal counts failed authentication attempts.
// Label:
//   - reason: "invalid_credentials" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)
