package schedule

import (
	"time"

	"scooply/models"
)

// The expander is pure calendar arithmetic: no storage, no clock. Dates cross
// its boundary as YYYY-MM-DD strings and are anchored at UTC midnight
// internally, so a day delta is always an exact multiple of 24h regardless of
// DST in the rule's zone.

// LocalDate converts an instant to the calendar date observed in the rule's
// timezone. The weekday of a civil date is zone-independent; which civil date
// "now" falls on is not, and near midnight the two can disagree by a day.
func LocalDate(t time.Time, rule *models.RecurrenceRule) string {
	return t.In(rule.Location()).Format(models.DateLayout)
}

// IsDue reports whether the rule calls for a visit on the candidate date.
// Paused rules and single-occurrence frequencies are never due; those visits
// are scheduled directly, not expanded.
func IsDue(rule *models.RecurrenceRule, date string) bool {
	if rule.Paused || !rule.IsRecurring() {
		return false
	}

	day, err := time.ParseInLocation(models.DateLayout, date, time.UTC)
	if err != nil {
		return false
	}
	start, err := time.ParseInLocation(models.DateLayout, rule.StartDate, time.UTC)
	if err != nil {
		return false
	}
	if day.Before(start) {
		return false
	}
	if !dayInSet(rule.DaysOfWeek, int(day.Weekday())) {
		return false
	}

	switch rule.Frequency {
	case models.FrequencyWeekly:
		return true
	case models.FrequencyBiweekly:
		// Whole weeks elapsed since the anchor; even weeks are "on". A
		// biweekly rule honors its full day set within each eligible week.
		elapsedDays := int(day.Sub(start).Hours() / 24)
		return (elapsedDays/7)%2 == 0
	}
	return false
}

// Enumerate returns every due date among the horizonDays consecutive dates
// starting at fromDate. No hidden state; calling it twice yields the same
// dates.
func Enumerate(rule *models.RecurrenceRule, fromDate string, horizonDays int) []string {
	from, err := time.ParseInLocation(models.DateLayout, fromDate, time.UTC)
	if err != nil {
		return nil
	}

	var due []string
	for i := 0; i < horizonDays; i++ {
		date := from.AddDate(0, 0, i).Format(models.DateLayout)
		if IsDue(rule, date) {
			due = append(due, date)
		}
	}
	return due
}

func dayInSet(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
