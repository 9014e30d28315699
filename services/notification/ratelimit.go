package notification

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedNotifier throttles outbound sends so a large dispatch run cannot
// exceed the SMS provider's message rate.
type RateLimitedNotifier struct {
	inner   Notifier
	limiter *rate.Limiter
}

// NewRateLimitedNotifier wraps a Notifier with a messages-per-second cap.
func NewRateLimitedNotifier(inner Notifier, perSecond float64, burst int) *RateLimitedNotifier {
	return &RateLimitedNotifier{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (n *RateLimitedNotifier) SendMessage(ctx context.Context, phone, body string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return n.inner.SendMessage(ctx, phone, body)
}
