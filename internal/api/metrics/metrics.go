// Package metrics defines and registers all custom Prometheus metrics for the
// cargo tracking API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at package init via promauto;
// the exposition endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cargo"

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ProductOpsTotal counts completed product lifecycle operations.
// Label:
//   - op: "create", "update" or "delete"
var ProductOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_ops_total",
		Help:      "Total number of successful product operations, by operation.",
	},
	[]string{"op"},
)

// StatsCacheTotal counts analytics snapshot cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (recomputed)
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of analytics cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
