package notification

import (
	"context"

	"go.uber.org/zap"
)

// Notifier delivers one rendered text message to a phone number. Delivery
// mechanics (carrier, provider API) live behind this interface; rendering is
// the caller's job.
type Notifier interface {
	SendMessage(ctx context.Context, phone, body string) error
}

// LogNotifier writes messages to the log instead of sending them. Used in
// development and as the default until an SMS provider is wired in.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) SendMessage(_ context.Context, phone, body string) error {
	n.Logger.Info("sms (log only)", zap.String("phone", phone), zap.String("body", body))
	return nil
}
