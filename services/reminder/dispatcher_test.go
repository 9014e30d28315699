package reminder_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"scooply/models"
	"scooply/services/reminder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVisitSource struct {
	visits map[string][]models.ScheduledVisit
	err    error
}

func (f *fakeVisitSource) GetOnDate(_ context.Context, date string) ([]models.ScheduledVisit, error) {
	return f.visits[date], f.err
}

type fakeCustomerSource struct {
	customers map[string]*models.Customer
}

func (f *fakeCustomerSource) GetByID(_ context.Context, id string) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s not found", id)
	}
	return c, nil
}

type fakeSendLog struct {
	entries map[string]*models.ReminderLogEntry // key customerId|date
}

func newFakeSendLog() *fakeSendLog {
	return &fakeSendLog{entries: make(map[string]*models.ReminderLogEntry)}
}

func (f *fakeSendLog) Exists(_ context.Context, customerID, date string) (bool, error) {
	_, ok := f.entries[customerID+"|"+date]
	return ok, nil
}

func (f *fakeSendLog) Record(_ context.Context, e *models.ReminderLogEntry) error {
	f.entries[e.CustomerID+"|"+e.Date] = e
	return nil
}

type fakeEnqueuer struct {
	payloads []models.ReminderPayload
	err      error
}

func (f *fakeEnqueuer) EnqueueReminder(_ context.Context, p models.ReminderPayload, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, p)
	return nil
}

func testDispatcher(visits *fakeVisitSource, customers *fakeCustomerSource, log *fakeSendLog, queue *fakeEnqueuer) *reminder.Dispatcher {
	return &reminder.Dispatcher{
		Visits:     visits,
		Customers:  customers,
		Log:        log,
		Queue:      queue,
		Logger:     zap.NewNop(),
		SendHour:   7,
		Location:   time.UTC,
		SMSFrom:    "Scooply",
		ReviewLink: "https://g.page/scooply/review",
	}
}

func optedInCustomer(id string) *models.Customer {
	return &models.Customer{
		ID:             id,
		Name:           "Dana",
		Phone:          "+13035550123",
		Address:        "41 Birch Ln",
		RemindersOptIn: true,
	}
}

func TestSendRemindersFor_DispatchesOptedInCustomers(t *testing.T) {
	visits := &fakeVisitSource{visits: map[string][]models.ScheduledVisit{
		"2024-01-03": {
			{ID: "v1", CustomerID: "cust-1", Date: "2024-01-03"},
			{ID: "v2", CustomerID: "cust-2", Date: "2024-01-03"},
		},
	}}
	optedOut := optedInCustomer("cust-2")
	optedOut.RemindersOptIn = false
	customers := &fakeCustomerSource{customers: map[string]*models.Customer{
		"cust-1": optedInCustomer("cust-1"),
		"cust-2": optedOut,
	}}
	log := newFakeSendLog()
	queue := &fakeEnqueuer{}

	result := testDispatcher(visits, customers, log, queue).SendRemindersFor(context.Background(), "2024-01-03")

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, queue.payloads, 1)

	p := queue.payloads[0]
	assert.Equal(t, "cust-1", p.CustomerID)
	assert.Equal(t, "+13035550123", p.Phone)
	assert.Contains(t, p.Body, "Dana")
	assert.Contains(t, p.Body, "41 Birch Ln")
	assert.Contains(t, p.Body, "https://g.page/scooply/review")
	assert.NotContains(t, p.Body, "{{")
}

func TestSendRemindersFor_SecondRunSendsNothing(t *testing.T) {
	visits := &fakeVisitSource{visits: map[string][]models.ScheduledVisit{
		"2024-01-03": {{ID: "v1", CustomerID: "cust-1", Date: "2024-01-03"}},
	}}
	customers := &fakeCustomerSource{customers: map[string]*models.Customer{
		"cust-1": optedInCustomer("cust-1"),
	}}
	log := newFakeSendLog()
	queue := &fakeEnqueuer{}
	d := testDispatcher(visits, customers, log, queue)

	first := d.SendRemindersFor(context.Background(), "2024-01-03")
	require.Equal(t, 1, first.Sent)

	second := d.SendRemindersFor(context.Background(), "2024-01-03")
	assert.Equal(t, 0, second.Sent)
	assert.Equal(t, 0, second.Failed)
	assert.Len(t, queue.payloads, 1)
}

func TestSendRemindersFor_EnqueueFailureRecorded(t *testing.T) {
	visits := &fakeVisitSource{visits: map[string][]models.ScheduledVisit{
		"2024-01-03": {{ID: "v1", CustomerID: "cust-1", Date: "2024-01-03"}},
	}}
	customers := &fakeCustomerSource{customers: map[string]*models.Customer{
		"cust-1": optedInCustomer("cust-1"),
	}}
	log := newFakeSendLog()
	queue := &fakeEnqueuer{err: errors.New("redis down")}

	result := testDispatcher(visits, customers, log, queue).SendRemindersFor(context.Background(), "2024-01-03")

	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)

	entry := log.entries["cust-1|2024-01-03"]
	require.NotNil(t, entry)
	assert.Equal(t, "failed", entry.Status)
}

func TestSendRemindersFor_MissingCustomerIsolated(t *testing.T) {
	visits := &fakeVisitSource{visits: map[string][]models.ScheduledVisit{
		"2024-01-03": {
			{ID: "v1", CustomerID: "cust-gone", Date: "2024-01-03"},
			{ID: "v2", CustomerID: "cust-1", Date: "2024-01-03"},
		},
	}}
	customers := &fakeCustomerSource{customers: map[string]*models.Customer{
		"cust-1": optedInCustomer("cust-1"),
	}}

	result := testDispatcher(visits, customers, newFakeSendLog(), &fakeEnqueuer{}).SendRemindersFor(context.Background(), "2024-01-03")

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestSendRemindersFor_MissingPhoneSkipped(t *testing.T) {
	visits := &fakeVisitSource{visits: map[string][]models.ScheduledVisit{
		"2024-01-03": {{ID: "v1", CustomerID: "cust-1", Date: "2024-01-03"}},
	}}
	noPhone := optedInCustomer("cust-1")
	noPhone.Phone = ""
	customers := &fakeCustomerSource{customers: map[string]*models.Customer{"cust-1": noPhone}}
	queue := &fakeEnqueuer{}

	result := testDispatcher(visits, customers, newFakeSendLog(), queue).SendRemindersFor(context.Background(), "2024-01-03")

	assert.Equal(t, 0, result.Sent)
	assert.Empty(t, queue.payloads)
	require.Len(t, result.Errors, 1)
}

func TestSendRemindersFor_InvalidDate(t *testing.T) {
	result := testDispatcher(&fakeVisitSource{}, &fakeCustomerSource{}, newFakeSendLog(), &fakeEnqueuer{}).
		SendRemindersFor(context.Background(), "Jan 3 2024")

	assert.Equal(t, 0, result.Sent)
	require.Len(t, result.Errors, 1)
}
