package app

import (
	"errors"
	"fmt"
	"sort"

	stripe "github.com/stripe/stripe-go/v76"

	"github.com/nexuscopier/payments-api/api/config"
)

// ReferralSales lists recent completed-and-paid sessions carrying a referral
// code and aggregates them per code.
func (s serviceImpl) ReferralSales(limit int64) ([]AffiliateSales, error) {
	if limit <= 0 || limit > config.MaxSessionPageSize {
		limit = config.MaxSessionPageSize
	}
	sessions, err := s.gw.ListCompletedSessions(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	byCode := make(map[string]*AffiliateSales)
	for _, sess := range sessions {
		if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
			continue
		}
		code := sess.Metadata["referral_code"]
		if code == "" {
			continue
		}
		agg, ok := byCode[code]
		if !ok {
			agg = &AffiliateSales{Code: code, Currency: string(sess.Currency)}
			byCode[code] = agg
		}
		agg.Count++
		agg.TotalAmount += sess.AmountTotal
	}

	out := make([]AffiliateSales, 0, len(byCode))
	for _, agg := range byCode {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// SessionDetail fetches one checkout session by id.
func (s serviceImpl) SessionDetail(id string) (SessionDetail, error) {
	sess, err := s.gw.GetCheckoutSession(id, false)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return SessionDetail{}, fmt.Errorf("%w: session %s", ErrNotFound, id)
		}
		return SessionDetail{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	detail := SessionDetail{
		ID:            sess.ID,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		Created:       sess.Created,
		Metadata:      sess.Metadata,
	}
	if sess.CustomerDetails != nil {
		detail.CustomerEmail = sess.CustomerDetails.Email
		detail.CustomerName = sess.CustomerDetails.Name
	}
	return detail, nil
}
