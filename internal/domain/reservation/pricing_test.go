//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, checkIn, checkOut time.Time) reservation.StayPeriod {
	t.Helper()
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestCalculatorQuote(t *testing.T) {
	calc := reservation.NewCalculator(5000, 10)
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("two nights at $100", func(t *testing.T) {
		quote := calc.Quote(10000, mustStay(t, day(1), day(3)))

		assert.Equal(t, 2, quote.Nights)
		assert.Equal(t, int64(20000), quote.NightlyTotalCents)
		assert.Equal(t, int64(5000), quote.ServiceFeeCents)
		assert.Equal(t, int64(2000), quote.TaxesCents)
		assert.Equal(t, int64(27000), quote.TotalCents)
	})

	t.Run("taxes round to the nearest whole dollar", func(t *testing.T) {
		// 24900 * 10% = 2490 cents, rounds to $25.
		quote := calc.Quote(24900, mustStay(t, day(1), day(2)))

		assert.Equal(t, int64(2500), quote.TaxesCents)
		assert.Equal(t, int64(32400), quote.TotalCents)
	})

	t.Run("taxes round down below the half dollar", func(t *testing.T) {
		// 24400 * 10% = 2440 cents, rounds to $24.
		quote := calc.Quote(24400, mustStay(t, day(1), day(2)))

		assert.Equal(t, int64(2400), quote.TaxesCents)
	})

	t.Run("total is the sum of its parts", func(t *testing.T) {
		quote := calc.Quote(17950, mustStay(t, day(10), day(15)))

		assert.Equal(t, quote.NightlyTotalCents+quote.ServiceFeeCents+quote.TaxesCents, quote.TotalCents)
	})

	t.Run("zero tax rate", func(t *testing.T) {
		free := reservation.NewCalculator(0, 0)
		quote := free.Quote(10000, mustStay(t, day(1), day(2)))

		assert.Equal(t, int64(0), quote.TaxesCents)
		assert.Equal(t, int64(0), quote.ServiceFeeCents)
		assert.Equal(t, int64(10000), quote.TotalCents)
	})
}

func TestStayPeriodNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		nights   int
	}{
		{
			name:     "single night",
			checkIn:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			nights:   1,
		},
		{
			name:     "week long stay",
			checkIn:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
			nights:   7,
		},
		{
			name:     "clock times are ignored",
			checkIn:  time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC),
			nights:   2,
		},
		{
			name:     "month boundary",
			checkIn:  time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			nights:   2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stay := mustStay(t, tc.checkIn, tc.checkOut)
			assert.Equal(t, tc.nights, stay.Nights())
		})
	}

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(
			time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("same day is rejected", func(t *testing.T) {
		day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		_, err := reservation.NewStayPeriod(day, day.Add(6*time.Hour))
		assert.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})
}

func TestStayPeriodCovers(t *testing.T) {
	stay := mustStay(t,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	)

	assert.True(t, stay.Covers(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
	assert.True(t, stay.Covers(time.Date(2025, 6, 3, 23, 59, 0, 0, time.UTC)))
	assert.False(t, stay.Covers(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)), "check-out day is exclusive")
	assert.False(t, stay.Covers(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)))
}
