package models

import "time"

// ReminderPayload is the queued reminder task body: the message is fully
// rendered at dispatch time so the delivery worker only has to send it.
type ReminderPayload struct {
	CustomerID string `json:"customerId"`
	Phone      string `json:"phone"`
	Date       string `json:"date"` // visit date, YYYY-MM-DD
	Body       string `json:"body"`
}

// ReminderLogEntry records one reminder dispatch attempt for (customerId,
// date). The dispatcher checks the log before enqueueing, so re-running a
// date never sends a second message.
type ReminderLogEntry struct {
	CustomerID string    `bson:"customerId" json:"customerId"`
	Date       string    `bson:"date" json:"date"`
	Status     string    `bson:"status" json:"status"` // "sent" or "failed"
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
