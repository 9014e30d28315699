package tasks

import (
	"context"
	"encoding/json"
	"time"

	"scooply/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder payload in an asynq task scheduled for
// fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Enqueuer hands reminder payloads to the delivery queue.
type Enqueuer interface {
	EnqueueReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// QueueEnqueuer is the asynq-backed Enqueuer.
type QueueEnqueuer struct {
	Client *asynq.Client
}

func (q *QueueEnqueuer) EnqueueReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = q.Client.EnqueueContext(ctx, task, opts...)
	return err
}
