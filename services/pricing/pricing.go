package pricing

import (
	"fmt"

	"scooply/models"

	"github.com/shopspring/decimal"
)

// Pure price computation. All arithmetic is decimal and every returned amount
// is rounded to exactly two places, half-up.

// HourlyRate is the fixed rate for time-billed one-time and new-start jobs.
var HourlyRate = decimal.NewFromInt(100)

// ShortJobCutoffMinutes is the duration at or under which a timed job is
// billed as a standard visit instead.
const ShortJobCutoffMinutes = 15

var minutesPerHour = decimal.NewFromInt(60)

// PriceForVisit prices one visit: base price covers the first dog, each
// additional dog adds the per-extra-unit price. The minimum billable unit
// count is 1.
func PriceForVisit(serviceType *models.ServiceType, unitCount int) (models.Money, error) {
	if unitCount < 1 {
		return models.Money{}, fmt.Errorf("unit count %d below minimum billable unit of 1", unitCount)
	}

	extras := decimal.NewFromInt(int64(unitCount - 1))
	amount := serviceType.BasePrice.Decimal.Add(serviceType.PricePerExtraUnit.Decimal.Mul(extras))
	return models.NewMoney(amount.Round(2)), nil
}

// PriceForTimedVisit prices an ad-hoc job by elapsed duration at the hourly
// rate. Jobs of ShortJobCutoffMinutes or less are not time-billed; they fall
// back to the standard visit price.
func PriceForTimedVisit(durationMinutes int, fallback *models.ServiceType, unitCount int) (models.Money, error) {
	if durationMinutes <= ShortJobCutoffMinutes {
		return PriceForVisit(fallback, unitCount)
	}

	hours := decimal.NewFromInt(int64(durationMinutes)).Div(minutesPerHour)
	return models.NewMoney(hours.Mul(HourlyRate).Round(2)), nil
}
