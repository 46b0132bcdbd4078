package invoice

import (
	"context"
	"errors"
	"fmt"

	"gatherly/services/pricing"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CreatePaymentIntent creates a Stripe PaymentIntent for the invoice's latest
// pricing snapshot. The invoice must have been priced first; amounts convert
// to cents only here, at the payment boundary.
func (s *DefaultInvoiceService) CreatePaymentIntent(ctx context.Context, id string) (*PaymentIntentResult, error) {
	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Pricing == nil {
		return nil, errors.New("invoice has no pricing snapshot; reprice it first")
	}

	amount := pricing.ToCents(inv.Pricing.Total)
	if amount <= 0 {
		return nil, errors.New("invoice total must be positive to collect payment")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"invoice_id":  inv.InvoiceID,
			"snapshot_id": inv.Pricing.ID,
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv.PaymentID = pi.ID
	if err := s.Repo.Update(ctx, inv); err != nil {
		s.Logger.Error("failed to record payment intent on invoice",
			zap.String("invoice", inv.InvoiceID), zap.Error(err))
	}

	s.Logger.Info("payment intent created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("payment_intent", pi.ID),
		zap.Int64("amount_cents", amount))

	return &PaymentIntentResult{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		AmountCents:     amount,
		Total:           pricing.Round2(inv.Pricing.Total),
	}, nil
}
