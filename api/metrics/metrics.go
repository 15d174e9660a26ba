package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutSessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_sessions_created_total",
			Help: "Number of Stripe checkout sessions created",
		},
	)

	WebhookEventsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_events_received_total",
			Help: "Number of verified Stripe webhook events received",
		},
	)

	SalesForwarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_forwarded_total",
			Help: "Number of sales forwarded to the registration script",
		},
	)

	SaleForwardFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sale_forward_failures_total",
			Help: "Number of failed registration forwarding calls",
		},
	)
)

func Register() {
	prometheus.MustRegister(CheckoutSessionsCreated, WebhookEventsReceived, SalesForwarded, SaleForwardFailures)
}
