// Package metrics defines and registers all custom Prometheus metrics for
// the fincloud services. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fincloud"

// ── Authentication metrics ────────────────────────────────────────────────────

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

// TokenVerificationsTotal counts bearer token verifications performed by the
// auth middleware across all services.
// Label:
//   - result: "ok" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests rejected by the access policy after
// successful authentication.
// Label:
//   - path: the request path that was denied
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of authorization denials, by request path.",
	},
	[]string{"path"},
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// OperationsCreatedTotal counts ledger entries recorded.
// Label:
//   - kind: "income" or "expense"
var OperationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_created_total",
		Help:      "Total number of monetary operations recorded, by kind.",
	},
	[]string{"kind"},
)

// SummaryDuration measures how long building a financial summary takes,
// including the fetch from the finance service.
var SummaryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "summary_duration_seconds",
		Help:      "Duration of summary report construction.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ReportCacheTotal counts summary cache lookups.
// Label:
//   - result: "hit" or "miss"
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of summary cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
