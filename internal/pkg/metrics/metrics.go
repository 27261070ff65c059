// Package metrics defines and registers all custom Prometheus metrics for the
// admin console. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillgap"

// APIRequestsTotal counts outbound calls to the backend services.
// Labels:
//   - service: "auth" or "admin"
//   - method: HTTP method
//   - outcome: "ok", "client_error", "server_error", or "transport_error"
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of outbound API requests, by service and outcome.",
	},
	[]string{"service", "method", "outcome"},
)

// APIRequestDuration measures outbound call latency end-to-end.
// Label:
//   - service: "auth" or "admin"
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of outbound API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service"},
)

// RoleMutationsTotal counts role catalog mutations issued by the console.
// Labels:
//   - action: "create", "update", "toggle", or "delete"
//   - result: "ok" or "error"
var RoleMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_mutations_total",
		Help:      "Total number of role mutations issued, by action and result.",
	},
	[]string{"action", "result"},
)
