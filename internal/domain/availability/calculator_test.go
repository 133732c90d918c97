//go:build unit

package availability_test

import (
	"testing"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(t *testing.T, in, out string) stay.Period {
	t.Helper()
	p, err := stay.ParsePeriod(in, out)
	require.NoError(t, err)
	return p
}

func roomsOf(roomTypeID uuid.UUID, n int) []inventory.RoomRef {
	out := make([]inventory.RoomRef, n)
	for i := range out {
		out[i] = inventory.RoomRef{RoomTypeID: roomTypeID, Status: room.StatusClean}
	}
	return out
}

func TestCalculator_RoomsLeft(t *testing.T) {
	oceanSuite := uuid.New()
	garden := uuid.New()
	idx := inventory.NewIndex(append(roomsOf(oceanSuite, 2), roomsOf(garden, 1)...), inventory.CountAllRooms)
	calc := availability.NewCalculator()
	query := period(t, "2025-06-01", "2025-06-04")

	t.Run("two overlapping bookings sell out a two-room type", func(t *testing.T) {
		occ := []availability.Occupancy{
			{RoomTypeID: oceanSuite, Period: period(t, "2025-05-30", "2025-06-02"), Status: reservation.StatusConfirmed},
			{RoomTypeID: oceanSuite, Period: period(t, "2025-06-03", "2025-06-05"), Status: reservation.StatusPending},
		}
		got := calc.RoomsLeft(idx, oceanSuite, query, occ)
		assert.Equal(t, availability.Result{
			RoomTypeID: oceanSuite,
			TotalRooms: 2,
			Occupied:   2,
			RoomsLeft:  0,
			IsSoldOut:  true,
		}, got)
	})

	t.Run("cancellation frees the room", func(t *testing.T) {
		occ := []availability.Occupancy{
			{RoomTypeID: oceanSuite, Period: period(t, "2025-05-30", "2025-06-02"), Status: reservation.StatusConfirmed},
			{RoomTypeID: oceanSuite, Period: period(t, "2025-06-03", "2025-06-05"), Status: reservation.StatusCancelled},
		}
		got := calc.RoomsLeft(idx, oceanSuite, query, occ)
		assert.Equal(t, 1, got.RoomsLeft)
		assert.False(t, got.IsSoldOut)
	})

	t.Run("touching stays do not occupy", func(t *testing.T) {
		occ := []availability.Occupancy{
			{RoomTypeID: oceanSuite, Period: period(t, "2025-05-28", "2025-06-01"), Status: reservation.StatusCheckedOut},
			{RoomTypeID: oceanSuite, Period: period(t, "2025-06-04", "2025-06-06"), Status: reservation.StatusConfirmed},
		}
		got := calc.RoomsLeft(idx, oceanSuite, query, occ)
		assert.Equal(t, 2, got.RoomsLeft)
	})

	t.Run("other room types are ignored", func(t *testing.T) {
		occ := []availability.Occupancy{
			{RoomTypeID: garden, Period: query, Status: reservation.StatusCheckedIn},
		}
		assert.Equal(t, 2, calc.RoomsLeft(idx, oceanSuite, query, occ).RoomsLeft)
		assert.True(t, calc.RoomsLeft(idx, garden, query, occ).IsSoldOut)
	})

	t.Run("overbooking never goes negative", func(t *testing.T) {
		occ := []availability.Occupancy{
			{RoomTypeID: garden, Period: query, Status: reservation.StatusConfirmed},
			{RoomTypeID: garden, Period: query, Status: reservation.StatusPending},
		}
		got := calc.RoomsLeft(idx, garden, query, occ)
		assert.Equal(t, 2, got.Occupied)
		assert.Zero(t, got.RoomsLeft)
		assert.True(t, got.IsSoldOut)
	})

	t.Run("unknown room type is sold out", func(t *testing.T) {
		got := calc.RoomsLeft(idx, uuid.New(), query, nil)
		assert.Zero(t, got.TotalRooms)
		assert.True(t, got.IsSoldOut)
	})

	t.Run("same inputs give the same answer", func(t *testing.T) {
		occ := []availability.Occupancy{
			{RoomTypeID: oceanSuite, Period: query, Status: reservation.StatusConfirmed},
		}
		assert.Equal(t, calc.RoomsLeft(idx, oceanSuite, query, occ), calc.RoomsLeft(idx, oceanSuite, query, occ))
	})
}

func TestSummarizeAndSelectable(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	idx := inventory.NewIndex(append(roomsOf(a, 1), roomsOf(b, 3)...), inventory.CountAllRooms)
	query := period(t, "2025-06-01", "2025-06-02")
	occ := []availability.Occupancy{
		{RoomTypeID: a, Period: query, Status: reservation.StatusConfirmed},
	}

	results := availability.NewCalculator().Summarize(idx, []uuid.UUID{a, b}, query, occ)
	require.Len(t, results, 2)
	assert.Equal(t, a, results[0].RoomTypeID)
	assert.True(t, results[0].IsSoldOut)
	assert.Equal(t, 3, results[1].RoomsLeft)

	selectable := availability.Selectable(results)
	require.Len(t, selectable, 1)
	assert.Equal(t, b, selectable[0].RoomTypeID)
}
