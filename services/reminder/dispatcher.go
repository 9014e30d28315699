package reminder

import (
	"context"
	"fmt"
	"time"

	"scooply/models"
	"scooply/services/notification"
	"scooply/services/tasks"

	"go.uber.org/zap"
)

// VisitSource is the slice of visit storage the dispatcher reads.
type VisitSource interface {
	GetOnDate(ctx context.Context, date string) ([]models.ScheduledVisit, error)
}

// CustomerSource resolves visit customers for opt-in and contact details.
type CustomerSource interface {
	GetByID(ctx context.Context, customerID string) (*models.Customer, error)
}

// SendLog is the dispatch log keyed by (customerId, date).
type SendLog interface {
	Exists(ctx context.Context, customerID, date string) (bool, error)
	Record(ctx context.Context, entry *models.ReminderLogEntry) error
}

// Dispatcher finds a date's visits for opted-in customers, renders their
// reminder text and hands it to the delivery queue. The send log is checked
// before enqueueing, so re-running a date dispatches nothing twice.
type Dispatcher struct {
	Visits    VisitSource
	Customers CustomerSource
	Log       SendLog
	Queue     tasks.Enqueuer
	Logger    *zap.Logger

	// SendHour is the local hour the queued message should fire; Location is
	// the zone that hour is evaluated in.
	SendHour int
	Location *time.Location

	SMSFrom    string
	ReviewLink string
}

// SendRemindersFor dispatches reminders for every visit on the given date.
// Failures are logged and counted, never fatal to the run.
func (d *Dispatcher) SendRemindersFor(ctx context.Context, date string) models.ReminderRunResult {
	result := models.ReminderRunResult{Date: date, Errors: []string{}}

	if _, err := time.Parse(models.DateLayout, date); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid date %q: %v", date, err))
		return result
	}

	visits, err := d.Visits.GetOnDate(ctx, date)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("fetch visits on %s: %v", date, err))
		return result
	}

	for i := range visits {
		d.dispatchForVisit(ctx, &visits[i], date, &result)
	}

	d.Logger.Info("reminder dispatch complete",
		zap.String("date", date),
		zap.Int("visits", len(visits)),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed))
	return result
}

func (d *Dispatcher) dispatchForVisit(ctx context.Context, visit *models.ScheduledVisit, date string, result *models.ReminderRunResult) {
	cust, err := d.Customers.GetByID(ctx, visit.CustomerID)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("visit %s: %v", visit.ID, err))
		return
	}
	if !cust.RemindersOptIn {
		return
	}
	if cust.Phone == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: opted in but has no phone number", cust.ID))
		return
	}

	sent, err := d.Log.Exists(ctx, cust.ID, date)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: reminder log check: %v", cust.ID, err))
		return
	}
	if sent {
		return
	}

	body := notification.RenderReminder(notification.ReminderMessage{
		Name:       cust.Name,
		Address:    cust.Address,
		Date:       date,
		From:       d.SMSFrom,
		ReviewLink: d.ReviewLink,
	})
	payload := models.ReminderPayload{
		CustomerID: cust.ID,
		Phone:      cust.Phone,
		Date:       date,
		Body:       body,
	}

	entry := &models.ReminderLogEntry{CustomerID: cust.ID, Date: date}
	if err := d.Queue.EnqueueReminder(ctx, payload, d.fireAt(date)); err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: enqueue reminder: %v", cust.ID, err))
		entry.Status = "failed"
		entry.Error = err.Error()
	} else {
		result.Sent++
		entry.Status = "sent"
	}
	if err := d.Log.Record(ctx, entry); err != nil {
		d.Logger.Error("failed to record reminder log entry",
			zap.String("customerId", cust.ID),
			zap.String("date", date),
			zap.Error(err))
	}
}

// fireAt places the message at SendHour local time on the visit date. asynq
// treats a past fire time as immediate.
func (d *Dispatcher) fireAt(date string) time.Time {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(models.DateLayout, date, loc)
	if err != nil {
		return time.Now()
	}
	return day.Add(time.Duration(d.SendHour) * time.Hour)
}
