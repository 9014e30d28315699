package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeProcessor charges stored payment methods via off-session
// PaymentIntents. stripe.Key is set once at startup from config.
type StripeProcessor struct {
	Logger *zap.Logger
}

// NewStripeProcessor constructs a Stripe-backed Processor.
func NewStripeProcessor(logger *zap.Logger) *StripeProcessor {
	return &StripeProcessor{Logger: logger}
}

// ChargeOffSession creates and confirms an off-session PaymentIntent for the
// given amount in minor units. The caller bounds the call with its context;
// a timeout is reported as a charge failure.
func (p *StripeProcessor) ChargeOffSession(ctx context.Context, customerRef, paymentMethodRef string, amountMinorUnits int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountMinorUnits),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		Customer:      stripe.String(customerRef),
		PaymentMethod: stripe.String(paymentMethodRef),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe charge for customer %s failed: %w", customerRef, err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("stripe charge for customer %s not succeeded: status %s", customerRef, pi.Status)
	}

	p.Logger.Info("off-session charge succeeded",
		zap.String("customerRef", customerRef),
		zap.String("paymentIntent", pi.ID),
		zap.Int64("amountMinorUnits", amountMinorUnits))
	return pi.ID, nil
}
