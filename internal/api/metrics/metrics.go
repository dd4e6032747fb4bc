// Package metrics defines the custom Prometheus metrics of the restaurant API.
// Metrics are registered with the default registry at package init through
// promauto. A router built with its own registry registers Collectors there
// too. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant"

// Auth attempt results.
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultThrottled = "throttled"
)

// AuthAttemptsTotal counts signup and login attempts.
// Labels:
//   - operation: "signup" or "login"
//   - result: "success", "failure" or "throttled"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of signup and login attempts, by outcome.",
	},
	[]string{"operation", "result"},
)

// MenuMutationsTotal counts successful admin changes to the menu.
// Labels:
//   - category: the table name (e.g. "main", "beverages")
//   - operation: "create", "update" or "delete"
var MenuMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_mutations_total",
		Help:      "Total number of menu items created, updated or deleted.",
	},
	[]string{"category", "operation"},
)

var MessagesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_created_total",
		Help:      "Total number of guestbook messages stored.",
	},
)

var LoginThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Total number of logins rejected by the failed-attempt throttle.",
	},
)

// Collectors returns every custom metric for registration on a non-default
// registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AuthAttemptsTotal,
		MenuMutationsTotal,
		MessagesCreatedTotal,
		LoginThrottledTotal,
	}
}
