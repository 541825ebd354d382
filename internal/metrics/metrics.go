// Package metrics exposes the Prometheus counters shared by both services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "food_delivery_events_consumed_total",
		Help: "Messages delivered to a subscriber, by routing key.",
	}, []string{"routing_key"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "food_delivery_events_published_total",
		Help: "Messages published to the exchange, by routing key.",
	}, []string{"routing_key"})

	PublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "food_delivery_publish_failures_total",
		Help: "Best-effort publishes that were dropped after an error.",
	})

	ReconnectAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "food_delivery_consumer_reconnects_total",
		Help: "Subscriber loop restarts after a broker failure.",
	})

	NotificationsStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "food_delivery_notifications_stored_total",
		Help: "Notification records appended to the in-memory store.",
	})
)
