// Package metrics defines all custom Prometheus metrics for the hostel
// maintenance API. It is the single source of truth for metric names, labels
// and help strings; promauto registers everything with the default registry
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hostel_maintenance"

// ComplaintsCreatedTotal counts newly filed complaints.
// Label:
//   - category: complaint category (e.g. "Plumbing")
var ComplaintsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_created_total",
		Help:      "Total number of complaints filed, by category.",
	},
	[]string{"category"},
)

// ComplaintTransitionsTotal counts successful status transitions.
// Label:
//   - status: the status applied by the transition (e.g. "Resolved")
var ComplaintTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaint_transitions_total",
		Help:      "Total number of complaint status transitions, by new status.",
	},
	[]string{"status"},
)

// ComplaintTransitionRejectedTotal counts transition attempts the lifecycle
// engine refused.
// Label:
//   - reason: "forbidden", "closed", "invalid_transition" or "validation"
var ComplaintTransitionRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaint_transitions_rejected_total",
		Help:      "Total number of refused complaint transition attempts, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
