package models

import (
	"fmt"
	"time"
)

// Service frequencies. Weekly and biweekly rules are expanded into dated
// visits; one-time and new-start visits are scheduled directly and never
// expanded.
const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyOneTime  = "one-time"
	FrequencyNewStart = "new-start"
)

// DateLayout is the calendar-date format used everywhere a date crosses a
// package or storage boundary.
const DateLayout = "2006-01-02"

// RecurrenceRule is a customer's standing schedule: which weekdays they are
// serviced, how often, and in which timezone their calendar days are evaluated.
type RecurrenceRule struct {
	ID            string    `bson:"id" json:"id"`
	CustomerID    string    `bson:"customerId" json:"customerId"`
	ServiceTypeID string    `bson:"serviceTypeId,omitempty" json:"serviceTypeId,omitempty"`
	Frequency     string    `bson:"frequency" json:"frequency"`
	DaysOfWeek    []int     `bson:"daysOfWeek" json:"daysOfWeek"` // 0=Sunday … 6=Saturday
	StartDate     string    `bson:"startDate" json:"startDate"`   // YYYY-MM-DD, parity anchor
	WindowStart   string    `bson:"windowStart,omitempty" json:"windowStart,omitempty"`
	WindowEnd     string    `bson:"windowEnd,omitempty" json:"windowEnd,omitempty"`
	Timezone      string    `bson:"timezone" json:"timezone"` // IANA zone name
	Paused        bool      `bson:"paused" json:"paused"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsRecurring reports whether the rule's frequency is expanded by the
// schedule expander.
func (r *RecurrenceRule) IsRecurring() bool {
	return r.Frequency == FrequencyWeekly || r.Frequency == FrequencyBiweekly
}

// Validate rejects malformed rules at creation time rather than coercing them.
func (r *RecurrenceRule) Validate() error {
	if r.CustomerID == "" {
		return fmt.Errorf("rule validation: missing customer id")
	}
	switch r.Frequency {
	case FrequencyWeekly, FrequencyBiweekly:
		if len(r.DaysOfWeek) == 0 {
			return fmt.Errorf("rule validation: %s rule requires a non-empty day-of-week set", r.Frequency)
		}
		for _, d := range r.DaysOfWeek {
			if d < 0 || d > 6 {
				return fmt.Errorf("rule validation: day of week %d out of range [0,6]", d)
			}
		}
	case FrequencyOneTime, FrequencyNewStart:
		// Single-occurrence services carry no day set; the visit is scheduled
		// directly instead of expanded.
	default:
		return fmt.Errorf("rule validation: unknown frequency %q", r.Frequency)
	}
	if _, err := time.Parse(DateLayout, r.StartDate); err != nil {
		return fmt.Errorf("rule validation: invalid start date %q: %w", r.StartDate, err)
	}
	if r.Timezone == "" {
		return fmt.Errorf("rule validation: missing timezone")
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return fmt.Errorf("rule validation: unknown timezone %q: %w", r.Timezone, err)
	}
	return nil
}

// Location resolves the rule's IANA zone. Validate must have accepted the rule
// first; an unparseable zone here falls back to UTC.
func (r *RecurrenceRule) Location() *time.Location {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
