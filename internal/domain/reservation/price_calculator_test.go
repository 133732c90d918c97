//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/roomtype"
	"hotel-reservation/internal/domain/stay"
	"hotel-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRates(t *testing.T, weekday, weekend int64) roomtype.Rates {
	t.Helper()
	r, err := roomtype.NewRates(weekday, weekend)
	require.NoError(t, err)
	return r
}

func mustPeriod(t *testing.T, in, out string) stay.Period {
	t.Helper()
	p, err := stay.ParsePeriod(in, out)
	require.NoError(t, err)
	return p
}

func TestPerNightPriceCalculator(t *testing.T) {
	rates := mustRates(t, 1_000_000, 1_200_000)
	calc := reservation.NewPerNightPriceCalculator(1000, []time.Weekday{time.Friday, time.Saturday})

	tests := []struct {
		name     string
		in, out  string
		subtotal int64
		total    int64
	}{
		// 2025-06-05 is a Thursday.
		{name: "thursday to sunday", in: "2025-06-05", out: "2025-06-08", subtotal: 3_400_000, total: 3_740_000},
		{name: "weekdays only", in: "2025-06-01", out: "2025-06-04", subtotal: 3_000_000, total: 3_300_000},
		{name: "saturday night", in: "2025-06-07", out: "2025-06-08", subtotal: 1_200_000, total: 1_320_000},
		{name: "full week", in: "2025-06-02", out: "2025-06-09", subtotal: 7_400_000, total: 8_140_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := calc.Quote(rates, mustPeriod(t, tt.in, tt.out))
			assert.Equal(t, tt.subtotal, q.Subtotal.Minor())
			assert.Equal(t, tt.total, q.Total.Minor())
			assert.Equal(t, tt.total-tt.subtotal, q.Tax.Minor())
		})
	}
}

func TestFlatRateCalculator(t *testing.T) {
	rates := mustRates(t, 1_000_000, 1_200_000)
	q := reservation.NewFlatRateCalculator(0).Quote(rates, mustPeriod(t, "2025-06-05", "2025-06-08"))

	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, int64(3_000_000), q.Total.Minor())
	assert.True(t, q.Tax.IsZero())
}

func TestNewPriceCalculator(t *testing.T) {
	pc, err := reservation.NewPriceCalculator("", 0, []string{"fri", "Saturday"})
	require.NoError(t, err)
	assert.IsType(t, &reservation.PerNightPriceCalculator{}, pc)

	pc, err = reservation.NewPriceCalculator("FLAT", 0, nil)
	require.NoError(t, err)
	assert.IsType(t, &reservation.FlatRateCalculator{}, pc)

	_, err = reservation.NewPriceCalculator("hourly", 0, nil)
	assert.ErrorIs(t, err, reservation.ErrInvalidPricingPolicy)

	_, err = reservation.NewPriceCalculator("per_night", 0, []string{"funday"})
	assert.ErrorIs(t, err, reservation.ErrInvalidPricingPolicy)

	_, err = reservation.NewPriceCalculator("per_night", -1, nil)
	assert.ErrorIs(t, err, reservation.ErrInvalidPricingPolicy)

	_, err = reservation.NewPriceCalculator("flat", reservation.MaxTaxBasisPoints+1, nil)
	assert.ErrorIs(t, err, reservation.ErrInvalidPricingPolicy)
}

func TestQuote_LongestStayAtTopRate(t *testing.T) {
	rates := mustRates(t, roomtype.MaxRateMinor, roomtype.MaxRateMinor)
	p := mustPeriod(t, "2025-01-01", "2026-01-01")
	want := roomtype.MaxRateMinor * int64(stay.MaxNights) * 2

	calculators := map[string]reservation.PriceCalculator{
		"per night": reservation.NewPerNightPriceCalculator(reservation.MaxTaxBasisPoints, []time.Weekday{time.Saturday}),
		"flat":      reservation.NewFlatRateCalculator(reservation.MaxTaxBasisPoints),
	}
	for name, calc := range calculators {
		t.Run(name, func(t *testing.T) {
			q := calc.Quote(rates, p)
			assert.Equal(t, stay.MaxNights, q.Nights)
			assert.Equal(t, want, q.Total.Minor())
			assert.Equal(t, q.Subtotal, q.Tax)
		})
	}
}

func TestFactory_CreateReservation(t *testing.T) {
	rt := builder.NewRoomTypeBuilder().BuildDomain()
	factory := reservation.NewFactory(reservation.NewPerNightPriceCalculator(1000, []time.Weekday{time.Friday, time.Saturday}))
	guestID, staffID := uuid.New(), uuid.New()

	res, quote, err := factory.CreateReservation(rt, guestID, staffID, mustPeriod(t, "2025-06-05", "2025-06-08"), reservation.Note{})
	require.NoError(t, err)

	assert.Equal(t, reservation.StatusPending, res.Status())
	assert.Equal(t, rt.ID(), res.RoomTypeID())
	assert.Equal(t, quote.Total, res.Total())

	t.Run("total is a snapshot", func(t *testing.T) {
		wd := int64(5_000_000)
		require.NoError(t, rt.ChangeRates(&wd, nil))
		assert.Equal(t, quote.Total, res.Total())
		assert.Equal(t, money.FromMinor(wd), rt.Rates().Weekday)
	})

	t.Run("nil room type", func(t *testing.T) {
		_, _, err := factory.CreateReservation(nil, guestID, staffID, mustPeriod(t, "2025-06-05", "2025-06-08"), reservation.Note{})
		assert.ErrorIs(t, err, reservation.ErrRoomTypeRequired)
	})
}
