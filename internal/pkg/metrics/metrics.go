// Package metrics defines and registers the custom Prometheus metrics of the
// property portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics are registered with the default registry at package init via
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Authentication ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_credentials", "throttled", "invalid_input", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TokenVerificationsTotal counts session token checks.
// Label:
//   - result: "valid" or "rejected" (expired and forged are deliberately not split)
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// BootstrapAdminsCreatedTotal counts fallback admin accounts created.
var BootstrapAdminsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bootstrap_admins_created_total",
		Help:      "Total number of bootstrap admin accounts created.",
	},
)

// ── Authorization ────────────────────────────────────────────────────────────

// AuthzDecisionsTotal counts authorization gate decisions.
// Labels:
//   - decision: "allow", "forbidden", "unauthenticated"
//   - scope: "admin", "property", "any"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization decisions, by decision and scope.",
	},
	[]string{"decision", "scope"},
)

// ── Audit pipeline ───────────────────────────────────────────────────────────

// AuditQueueDepth tracks entries waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEntriesTotal counts audit entries leaving the pipeline.
// Label:
//   - result: "written", "dropped", "failed"
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit entries, by pipeline result.",
	},
	[]string{"result"},
)
