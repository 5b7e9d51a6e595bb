// Package metrics содержит метрики Prometheus приложения.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petcare"

var (
	// HTTPRequestDuration время обработки HTTP-запросов.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status_code"},
	)

	// LoginAttempts попытки входа по initData.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Telegram login attempts by result",
		},
		[]string{"result"},
	)

	// PaymentsCreated созданные платежи.
	PaymentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "payments_created_total",
			Help:      "Payments created at the gateway by order type and result",
		},
		[]string{"type", "result"},
	)

	// WebhookOutcomes результаты обработки уведомлений о платежах.
	WebhookOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "webhook_outcomes_total",
			Help:      "Processed payment notifications by outcome",
		},
		[]string{"outcome"},
	)

	// SubscriptionCancellations отменённые подписки по предыдущему плану.
	SubscriptionCancellations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "subscription_cancellations_total",
			Help:      "Cancelled subscriptions by previous plan",
		},
		[]string{"plan"},
	)
)

// Значения метки outcome для WebhookOutcomes.
const (
	WebhookPaid          = "paid"
	WebhookCancelled     = "cancelled"
	WebhookDuplicate     = "duplicate"
	WebhookIgnored       = "ignored"
	WebhookUnknownOrder  = "unknown_order"
	WebhookGatewayFailed = "gateway_error"
	WebhookStoreFailed   = "store_error"
)
