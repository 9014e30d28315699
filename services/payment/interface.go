package payment

import "context"

// Processor requests a single off-session charge against a stored payment
// method. It returns the external charge reference on success. Retrying
// failed charges is a collections concern, not this worker's.
type Processor interface {
	ChargeOffSession(ctx context.Context, customerRef, paymentMethodRef string, amountMinorUnits int64) (string, error)
}
