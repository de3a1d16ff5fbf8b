// Package metrics defines the custom Prometheus metrics of the HRM API.
// HTTP request metrics come from echoprometheus and are not repeated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hrm"

// AuthRejectionsTotal counts requests stopped by the auth chain.
// Label:
//   - reason: "no_token", "invalid_token", "identity_not_found", "inactive" or "role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authentication chain, by reason.",
	},
	[]string{"reason"},
)

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid_password", "not_found", "inactive", "throttled" or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// RecordsWrittenTotal counts successful resource writes.
// Labels:
//   - resource: e.g. "department", "leave"
//   - op: "create", "update", "status" or "delete"
var RecordsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_written_total",
		Help:      "Total number of resource writes accepted by the API.",
	},
	[]string{"resource", "op"},
)
