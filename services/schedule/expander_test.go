package schedule_test

import (
	"testing"
	"time"

	"scooply/models"
	"scooply/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday.
func weeklyRule(days ...int) *models.RecurrenceRule {
	return &models.RecurrenceRule{
		ID:         "rule-1",
		CustomerID: "cust-1",
		Frequency:  models.FrequencyWeekly,
		DaysOfWeek: days,
		StartDate:  "2024-01-01",
		Timezone:   "America/Denver",
	}
}

func TestIsDue_WeeklyMatchesDaySet(t *testing.T) {
	rule := weeklyRule(1, 3, 5) // Mon/Wed/Fri

	assert.True(t, schedule.IsDue(rule, "2024-01-01"))  // Mon
	assert.True(t, schedule.IsDue(rule, "2024-01-03"))  // Wed
	assert.True(t, schedule.IsDue(rule, "2024-01-05"))  // Fri
	assert.True(t, schedule.IsDue(rule, "2024-01-08"))  // next Mon
	assert.False(t, schedule.IsDue(rule, "2024-01-04")) // Thu
	assert.False(t, schedule.IsDue(rule, "2024-01-06")) // Sat
}

func TestIsDue_BeforeStartDate(t *testing.T) {
	rule := weeklyRule(1, 3, 5)
	rule.StartDate = "2024-02-01"

	// Valid rule, just not reached yet.
	assert.False(t, schedule.IsDue(rule, "2024-01-29"))
	assert.True(t, schedule.IsDue(rule, "2024-02-02")) // first Friday after start
}

func TestIsDue_BiweeklyParity(t *testing.T) {
	rule := weeklyRule(1) // Mondays
	rule.Frequency = models.FrequencyBiweekly

	assert.True(t, schedule.IsDue(rule, "2024-01-01"))
	assert.False(t, schedule.IsDue(rule, "2024-01-08"))
	assert.True(t, schedule.IsDue(rule, "2024-01-15"))
	assert.False(t, schedule.IsDue(rule, "2024-01-22"))
	assert.True(t, schedule.IsDue(rule, "2024-01-29"))
}

func TestIsDue_BiweeklyHonorsFullDaySetInOnWeeks(t *testing.T) {
	rule := weeklyRule(1, 3) // Mon/Wed
	rule.Frequency = models.FrequencyBiweekly

	// On week: both days due.
	assert.True(t, schedule.IsDue(rule, "2024-01-01"))
	assert.True(t, schedule.IsDue(rule, "2024-01-03"))
	// Off week: neither.
	assert.False(t, schedule.IsDue(rule, "2024-01-08"))
	assert.False(t, schedule.IsDue(rule, "2024-01-10"))
	// Next on week again.
	assert.True(t, schedule.IsDue(rule, "2024-01-15"))
	assert.True(t, schedule.IsDue(rule, "2024-01-17"))
}

func TestIsDue_PausedNeverDue(t *testing.T) {
	rule := weeklyRule(0, 1, 2, 3, 4, 5, 6)
	rule.Paused = true

	for i := 0; i < 30; i++ {
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i).Format(models.DateLayout)
		assert.False(t, schedule.IsDue(rule, date), "paused rule due on %s", date)
	}
}

func TestIsDue_SingleOccurrenceFrequenciesNeverExpanded(t *testing.T) {
	for _, freq := range []string{models.FrequencyOneTime, models.FrequencyNewStart} {
		rule := weeklyRule(1)
		rule.Frequency = freq
		assert.False(t, schedule.IsDue(rule, "2024-01-01"), "frequency %s", freq)
	}
}

func TestIsDue_BiweeklyParityStableAcrossDSTTransition(t *testing.T) {
	// US DST starts 2024-03-10; the week containing it is shorter in wall
	// time but must still count as exactly one week.
	rule := weeklyRule(1)
	rule.Frequency = models.FrequencyBiweekly
	rule.StartDate = "2024-03-04" // Monday before the transition

	assert.True(t, schedule.IsDue(rule, "2024-03-04"))
	assert.False(t, schedule.IsDue(rule, "2024-03-11"))
	assert.True(t, schedule.IsDue(rule, "2024-03-18"))
}

func TestEnumerate(t *testing.T) {
	rule := weeklyRule(1, 3, 5)

	dates := schedule.Enumerate(rule, "2024-01-01", 7)
	assert.Equal(t, []string{"2024-01-01", "2024-01-03", "2024-01-05"}, dates)

	// Restartable: same inputs, same output.
	assert.Equal(t, dates, schedule.Enumerate(rule, "2024-01-01", 7))
}

func TestEnumerate_EmptyHorizon(t *testing.T) {
	rule := weeklyRule(1)
	assert.Empty(t, schedule.Enumerate(rule, "2024-01-02", 0))
}

func TestLocalDate_ZoneBoundary(t *testing.T) {
	rule := weeklyRule(1)
	rule.Timezone = "America/Denver"

	// 04:30 UTC on Jan 2 is still Jan 1 in Denver (UTC-7).
	instant := time.Date(2024, 1, 2, 4, 30, 0, 0, time.UTC)
	require.Equal(t, "2024-01-01", schedule.LocalDate(instant, rule))

	rule.Timezone = "UTC"
	require.Equal(t, "2024-01-02", schedule.LocalDate(instant, rule))
}
