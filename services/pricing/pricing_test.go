package pricing_test

import (
	"testing"

	"scooply/models"
	"scooply/services/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceType(base, extra string) *models.ServiceType {
	b, _ := models.MoneyFromString(base)
	e, _ := models.MoneyFromString(extra)
	return &models.ServiceType{
		ID:                "st-weekly",
		Name:              "Weekly Scoop",
		BasePrice:         b,
		PricePerExtraUnit: e,
	}
}

func TestPriceForVisit(t *testing.T) {
	st := serviceType("24.00", "5.00")

	one, err := pricing.PriceForVisit(st, 1)
	require.NoError(t, err)
	assert.Equal(t, "24.00", one.String())

	three, err := pricing.PriceForVisit(st, 3)
	require.NoError(t, err)
	assert.Equal(t, "34.00", three.String())
}

func TestPriceForVisit_MinimumUnit(t *testing.T) {
	st := serviceType("24.00", "5.00")

	_, err := pricing.PriceForVisit(st, 0)
	assert.Error(t, err)
	_, err = pricing.PriceForVisit(st, -2)
	assert.Error(t, err)
}

func TestPriceForVisit_Monotonic(t *testing.T) {
	st := serviceType("19.50", "4.25")

	prev, err := pricing.PriceForVisit(st, 1)
	require.NoError(t, err)
	for n := 2; n <= 8; n++ {
		cur, err := pricing.PriceForVisit(st, n)
		require.NoError(t, err)
		assert.True(t, cur.GreaterThanOrEqual(prev.Decimal),
			"price for %d dogs (%s) below price for %d (%s)", n, cur, n-1, prev)
		prev = cur
	}
}

func TestPriceForTimedVisit_ShortJobFallsBackToVisitPrice(t *testing.T) {
	st := serviceType("24.00", "5.00")

	timed, err := pricing.PriceForTimedVisit(15, st, 1)
	require.NoError(t, err)
	standard, err := pricing.PriceForVisit(st, 1)
	require.NoError(t, err)
	assert.True(t, timed.Equal(standard.Decimal))

	// 10 minutes with two dogs is still a standard visit.
	timed, err = pricing.PriceForTimedVisit(10, st, 2)
	require.NoError(t, err)
	assert.Equal(t, "29.00", timed.String())
}

func TestPriceForTimedVisit_HourlyRate(t *testing.T) {
	st := serviceType("24.00", "5.00")

	hour, err := pricing.PriceForTimedVisit(60, st, 1)
	require.NoError(t, err)
	assert.Equal(t, "100.00", hour.String())

	ninety, err := pricing.PriceForTimedVisit(90, st, 1)
	require.NoError(t, err)
	assert.Equal(t, "150.00", ninety.String())
}

func TestPriceForTimedVisit_RoundsHalfUpToCents(t *testing.T) {
	st := serviceType("24.00", "5.00")

	// 50 min = 0.8333...h -> 83.333... -> 83.33
	fifty, err := pricing.PriceForTimedVisit(50, st, 1)
	require.NoError(t, err)
	assert.Equal(t, "83.33", fifty.String())

	// 16 min = 26.666... -> 26.67
	sixteen, err := pricing.PriceForTimedVisit(16, st, 1)
	require.NoError(t, err)
	assert.Equal(t, "26.67", sixteen.String())
}

func TestMoneyMinorUnits(t *testing.T) {
	m := models.NewMoney(decimal.RequireFromString("116.00"))
	assert.Equal(t, int64(11600), m.MinorUnits())

	m = models.NewMoney(decimal.RequireFromString("26.67"))
	assert.Equal(t, int64(2667), m.MinorUnits())
}
