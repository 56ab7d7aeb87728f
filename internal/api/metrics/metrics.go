// Package metrics defines and registers all custom Prometheus metrics for the
// event platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventhub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful account registrations.
// Label:
//   - role: "attendee" or "organizer"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "bad_password", or "unknown_email"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the auth or role gate.
// Label:
//   - reason: "missing_header", "invalid_token", "revoked", "unknown_subject", "forbidden_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected before reaching a handler.",
	},
	[]string{"reason"},
)

// TokensRevokedTotal counts tokens denylisted via logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of session tokens revoked by logout.",
	},
)

// ── Event metrics ─────────────────────────────────────────────────────────────

// EventsCreatedTotal counts newly created events.
// Label:
//   - category: the organizer-supplied event category
var EventsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Total number of events created, by category.",
	},
	[]string{"category"},
)

// EventReviewsTotal counts admin moderation decisions.
// Label:
//   - status: "approved" or "rejected"
var EventReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_reviews_total",
		Help:      "Total number of admin event reviews, by outcome.",
	},
	[]string{"status"},
)

// RegistrationsTotal counts successful event registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of event registrations created.",
	},
)
