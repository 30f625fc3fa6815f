// Package metrics defines and registers the custom Prometheus metrics of the
// tourism site. It is the single source of truth for metric names, labels and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tourism"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts that reached credential checking.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate" or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ValidationFailuresTotal counts forms rejected by server-side validation.
// Label:
//   - form: "login", "register", "booking" or "contact"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of submitted forms rejected by validation.",
	},
	[]string{"form"},
)

// ── Intake metrics ────────────────────────────────────────────────────────────

// BookingsCreatedTotal counts stored bookings.
// Label:
//   - service: "flight", "hotel" or "car"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by service.",
	},
	[]string{"service"},
)

// ContactMessagesTotal counts stored contact messages.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages received.",
	},
)

// ContactForwardedTotal counts delivery attempts made by the forwarder.
// Label:
//   - result: "delivered" or "failed"
var ContactForwardedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_forwarded_total",
		Help:      "Total number of contact message deliveries, by result.",
	},
	[]string{"result"},
)

// ContactQueueDepth tracks messages waiting in each forwarder worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ContactQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "contact_queue_depth",
		Help:      "Current number of contact messages pending in each forwarder worker channel.",
	},
	[]string{"worker_id"},
)
