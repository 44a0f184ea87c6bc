// Package metrics defines and registers the custom Prometheus metrics of the
// expense API. It is the single source of truth for metric names, labels and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pravaha"

// Upstream call results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: HTTP method
//   - route: the gin route template (e.g. "/api/expenses/approve/:expenseId")
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Expense metrics ───────────────────────────────────────────────────────────

// ExpensesSubmittedTotal counts recorded expenses.
// Label:
//   - currency: the submitted currency code
var ExpensesSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_submitted_total",
		Help:      "Total number of expenses submitted, by submitted currency.",
	},
	[]string{"currency"},
)

// ExpenseDecisionsTotal counts approvals and rejections.
// Label:
//   - status: "Approved" or "Rejected"
var ExpenseDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expense_decisions_total",
		Help:      "Total number of expense decisions, by resulting status.",
	},
	[]string{"status"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to third-party services.
// Labels:
//   - service: "restcountries", "exchangerate" or "vision"
//   - result: "success" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of calls to external services, by service and result.",
	},
	[]string{"service", "result"},
)

// ObserveUpstream records the outcome of a single upstream call.
func ObserveUpstream(service string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	UpstreamRequestsTotal.WithLabelValues(service, result).Inc()
}
