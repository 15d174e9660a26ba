package gateway

import stripe "github.com/stripe/stripe-go/v76"

// StripeGateway abstracts Stripe SDK operations needed by the app layer.
// Methods return values (not pointers) to respect the project's preference
// to avoid pointer types in public interfaces.
type StripeGateway interface {
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
	// GetCheckoutSession retrieves a session by id; with expandDiscounts set
	// the discount breakdown is included in the response.
	GetCheckoutSession(id string, expandDiscounts bool) (stripe.CheckoutSession, error)
	ListCompletedSessions(limit int64) ([]stripe.CheckoutSession, error)
	GetCoupon(id string) (stripe.Coupon, error)
	ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error)
}
