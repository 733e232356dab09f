// Package metrics defines all custom Prometheus metrics for the project
// management API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto; the
// router exposes the default registry on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gestao"

// LoginAttemptsTotal counts credential exchanges on /api/auth/login.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts explicit verifications on /api/auth/verify.
// Label:
//   - result: "success" or "failure"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verification requests, by result.",
	},
	[]string{"result"},
)

// EntityWritesTotal counts successful mutations per entity and operation.
// Labels:
//   - entity: "user", "project", or "task"
//   - op: "create", "update", or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful create/update/delete operations, by entity.",
	},
	[]string{"entity", "op"},
)
