package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	stripe "github.com/stripe/stripe-go/v76"

	"github.com/nexuscopier/payments-api/api/config"
	"github.com/nexuscopier/payments-api/api/metrics"
	gw "github.com/nexuscopier/payments-api/api/services/checkout/gateway"
	"github.com/nexuscopier/payments-api/api/services/checkout/registration"
)

// registerTimeout bounds the outbound registration call per webhook delivery.
const registerTimeout = 30 * time.Second

// eventCheckoutCompleted is the only event type this service acts on.
const eventCheckoutCompleted = "checkout.session.completed"

// Registrar forwards completed sales to the external registration collaborator.
type Registrar interface {
	RegisterSale(ctx context.Context, sale registration.Sale) error
	Ping(ctx context.Context) (registration.ProbeResult, error)
}

// Service defines the business operations for the checkout domain.
type Service interface {
	CreateCheckoutSession(req CheckoutRequest) (string, error)
	HandleWebhook(payload []byte, sigHeader string) error
	ReferralSales(limit int64) ([]AffiliateSales, error)
	SessionDetail(id string) (SessionDetail, error)
	ProbeRegistration(ctx context.Context) (registration.ProbeResult, error)
}

// serviceImpl is a concrete implementation.
type serviceImpl struct {
	gw  gw.StripeGateway
	reg Registrar
	cfg *config.Config
}

func NewService(g gw.StripeGateway, r Registrar, cfg *config.Config) Service {
	return serviceImpl{gw: g, reg: r, cfg: cfg}
}

// CreateCheckoutSession validates the request, builds localized session
// parameters and asks Stripe for a hosted checkout session.
func (s serviceImpl) CreateCheckoutSession(req CheckoutRequest) (string, error) {
	plan, ok := PlanByID(req.Plan)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlan, req.Plan)
	}
	lang := NormalizeLang(req.Lang)
	prefix := LangPrefix(lang)
	referral := NormalizeReferralCode(req.ReferralCode)

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(plan.PriceID),
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:          stripe.String(s.cfg.Domain + prefix + "/success.html?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:           stripe.String(s.cfg.Domain + prefix + "/cancel.html"),
		Locale:              stripe.String(lang),
		AllowPromotionCodes: stripe.Bool(true),
		PaymentMethodTypes:  stripe.StringSlice(paymentMethodTypes),
		AutomaticTax:        &stripe.CheckoutSessionAutomaticTaxParams{Enabled: stripe.Bool(false)},
		CustomText: &stripe.CheckoutSessionCustomTextParams{
			Submit: &stripe.CheckoutSessionCustomTextSubmitParams{
				Message: stripe.String(submitMessage(lang)),
			},
		},
	}
	params.AddMetadata("plan", req.Plan)
	params.AddMetadata("plan_name", plan.Name)
	params.AddMetadata("lang", lang)
	params.AddMetadata("source", "web")
	if referral != "" {
		params.AddMetadata("referral_code", referral)
		params.AddMetadata("is_referral", "true")
	}

	sess, err := s.gw.CreateCheckoutSession(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	metrics.CheckoutSessionsCreated.Inc()
	slog.Info("checkout session created",
		"session_id", sess.ID, "plan", req.Plan, "lang", lang, "referral", referral != "")
	return sess.ID, nil
}

// HandleWebhook verifies the delivery signature and dispatches recognized
// event types. Nothing from the payload is acted upon before verification.
func (s serviceImpl) HandleWebhook(payload []byte, sigHeader string) error {
	event, err := s.gw.ConstructWebhookEvent(payload, sigHeader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	metrics.WebhookEventsReceived.Inc()

	if string(event.Type) != eventCheckoutCompleted {
		slog.Debug("ignoring webhook event", "type", string(event.Type))
		return nil
	}
	return s.handleCheckoutSessionCompleted(event)
}

// handleCheckoutSessionCompleted processes the checkout.session.completed event
func (s serviceImpl) handleCheckoutSessionCompleted(event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("%w: error unmarshaling into CheckoutSession: %v", ErrBadEvent, err)
	}

	planID := sess.Metadata["plan"]
	planName := sess.Metadata["plan_name"]
	if planName == "" {
		planName = PlanName(planID)
	}
	var email, name string
	if sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
		name = sess.CustomerDetails.Name
	}
	licenses := LicensesForAmount(sess.AmountTotal)
	affiliate := s.resolveAffiliate(sess)

	slog.Info("payment completed",
		"session_id", sess.ID, "plan", planID, "amount", sess.AmountTotal,
		"currency", string(sess.Currency), "licenses", licenses, "affiliate", affiliate)

	if email == "" {
		// Stripe already got its 200; without an email there is nothing to register.
		slog.Warn("completed session has no customer email, skipping registration", "session_id", sess.ID)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), registerTimeout)
	defer cancel()
	sale := registration.Sale{
		Email:     email,
		Name:      name,
		Licenses:  licenses,
		SessionID: sess.ID,
		Amount:    sess.AmountTotal,
		PlanName:  planName,
		Affiliate: affiliate,
	}
	if err := s.reg.RegisterSale(ctx, sale); err != nil {
		// Best effort: a redelivery from Stripe would only duplicate the row.
		slog.Error("sale registration failed", "session_id", sess.ID, "err", err)
		metrics.SaleForwardFailures.Inc()
		return nil
	}
	metrics.SalesForwarded.Inc()
	return nil
}

// resolveAffiliate attributes a sale to a partner. An explicit referral code
// in session metadata wins over any coupon applied at checkout. The coupon
// scan is a weak, order-dependent heuristic: webhook payloads usually omit the
// discount breakdown, so a second lookup re-fetches the session with it
// expanded.
func (s serviceImpl) resolveAffiliate(sess stripe.CheckoutSession) string {
	if code := sess.Metadata["referral_code"]; code != "" {
		return code
	}
	if code := s.couponCode(sess); code != "" {
		return code
	}
	fresh, err := s.gw.GetCheckoutSession(sess.ID, true)
	if err != nil {
		slog.Warn("could not re-fetch session for coupon detection", "session_id", sess.ID, "err", err)
		return ""
	}
	return s.couponCode(fresh)
}

// couponCode returns the first non-empty coupon name-or-id in the session's
// discount breakdown, fetching the coupon when only its id is embedded.
func (s serviceImpl) couponCode(sess stripe.CheckoutSession) string {
	if sess.TotalDetails == nil || sess.TotalDetails.Breakdown == nil {
		return ""
	}
	for _, d := range sess.TotalDetails.Breakdown.Discounts {
		if d == nil || d.Discount == nil || d.Discount.Coupon == nil {
			continue
		}
		cp := d.Discount.Coupon
		if cp.Name != "" {
			return cp.Name
		}
		if cp.ID == "" {
			continue
		}
		full, err := s.gw.GetCoupon(cp.ID)
		if err == nil && full.Name != "" {
			return full.Name
		}
		return cp.ID
	}
	return ""
}

// ProbeRegistration checks connectivity to the registration script.
func (s serviceImpl) ProbeRegistration(ctx context.Context) (registration.ProbeResult, error) {
	return s.reg.Ping(ctx)
}
