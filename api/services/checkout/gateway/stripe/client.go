package stripegw

import (
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/coupon"
	"github.com/stripe/stripe-go/v76/webhook"

	gw "github.com/nexuscopier/payments-api/api/services/checkout/gateway"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// client is the Stripe SDK-backed implementation of the gateway.
type client struct{ webhookSecret string }

// New returns a StripeGateway backed by the official Stripe SDK.
func New(webhookSecret string) gw.StripeGateway { return client{webhookSecret: webhookSecret} }

func (client) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	sessPtr, err := session.New(params)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}
	if sessPtr == nil {
		return stripe.CheckoutSession{}, nil
	}
	return *sessPtr, nil
}

func (client) GetCheckoutSession(id string, expandDiscounts bool) (stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	if expandDiscounts {
		params.AddExpand("total_details.breakdown")
	}
	sessPtr, err := session.Get(id, params)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}
	if sessPtr == nil {
		return stripe.CheckoutSession{}, nil
	}
	return *sessPtr, nil
}

func (client) ListCompletedSessions(limit int64) ([]stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{
		Status: stripe.String(string(stripe.CheckoutSessionStatusComplete)),
	}
	params.Limit = stripe.Int64(limit)

	sessions := make([]stripe.CheckoutSession, 0, limit)
	it := session.List(params)
	for it.Next() {
		if s := it.CheckoutSession(); s != nil {
			sessions = append(sessions, *s)
		}
	}
	return sessions, it.Err()
}

func (client) GetCoupon(id string) (stripe.Coupon, error) {
	couponPtr, err := coupon.Get(id, nil)
	if err != nil {
		return stripe.Coupon{}, err
	}
	if couponPtr == nil {
		return stripe.Coupon{}, nil
	}
	return *couponPtr, nil
}

func (c client) ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
}
