// Package metrics defines and registers the custom Prometheus metrics of the
// curator web client. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init (promauto);
// HTTP request metrics come from echoprometheus and share the same registry.
// The authenticated-session gauge is registered at startup once the session
// store exists.
package metrics

import (
	"context"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "curator_web"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login exchanges by outcome.
// Label:
//   - outcome: "success", "auth", "network", "validation", "in_flight" or "session"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SessionCounter reports how many authenticated sessions the repository holds.
type SessionCounter func(ctx context.Context) (int, error)

const countTimeout = 2 * time.Second

// RegisterAuthenticatedSessions exposes count as a gauge read on every scrape,
// so sessions dropped by store expiry leave the figure without a logout.
// A failing count reports NaN.
func RegisterAuthenticatedSessions(reg prometheus.Registerer, count SessionCounter) error {
	gauge := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "authenticated_sessions",
			Help:      "Current number of authenticated sessions held by the session store.",
		},
		func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), countTimeout)
			defer cancel()
			n, err := count(ctx)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		},
	)
	return reg.Register(gauge)
}

// LogoutsTotal counts session clears, including clears of already anonymous sessions.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// ── Backend metrics ───────────────────────────────────────────────────────────

// UserListFetchTotal counts user-listing fetches.
// Label:
//   - result: "success", "data_load", "network" or "denied"
var UserListFetchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_list_fetch_total",
		Help:      "Total number of user-listing fetches, by result.",
	},
	[]string{"result"},
)

// BackendRequestDuration measures backend calls end-to-end.
// Labels:
//   - endpoint: walker name (e.g. "login_user")
//   - result: "ok" or "error"
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the news-analysis backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint", "result"},
)
