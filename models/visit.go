package models

import "time"

// Visit statuses as updated from the field.
const (
	VisitStatusScheduled  = "scheduled"
	VisitStatusInProgress = "in_progress"
	VisitStatusCompleted  = "completed"
)

// ScheduledVisit is one concrete dated service stop for a customer. At most
// one visit may exist per (customerId, date); the visit collection enforces
// that with a unique index.
type ScheduledVisit struct {
	ID            string    `bson:"id" json:"id"`
	CustomerID    string    `bson:"customerId" json:"customerId"`
	Date          string    `bson:"date" json:"date"` // YYYY-MM-DD
	ScheduledTime string    `bson:"scheduledTime,omitempty" json:"scheduledTime,omitempty"`
	Status        string    `bson:"status" json:"status"`
	OrderIndex    int       `bson:"orderIndex" json:"orderIndex"`
	Billable      bool      `bson:"billable" json:"billable"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
