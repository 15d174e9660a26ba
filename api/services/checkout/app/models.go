package app

// CheckoutRequest is the inbound body of POST /create-checkout-session.
// Lang and ReferralCode are free text; unknown languages fall back to the
// default and referral codes are only trimmed and upper-cased, so neither
// carries validation rules.
type CheckoutRequest struct {
	Plan         string `json:"plan" validate:"required"`
	Lang         string `json:"lang"`
	ReferralCode string `json:"referral_code"`
}

// AffiliateSales aggregates paid sessions attributed to one referral code.
type AffiliateSales struct {
	Code        string `json:"code"`
	Count       int    `json:"count"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `json:"currency"`
}

// SessionDetail is the admin view of a single checkout session.
type SessionDetail struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	CustomerName  string            `json:"customer_name,omitempty"`
	Created       int64             `json:"created"`
	Metadata      map[string]string `json:"metadata"`
}

// paymentMethodTypes is the superset offered at checkout; Stripe filters out
// methods unavailable for the buyer's currency and region.
var paymentMethodTypes = []string{
	"card", "paypal", "revolut_pay", "amazon_pay", "naver_pay",
	"link", "payco", "bancontact", "blik", "eps", "klarna",
}
