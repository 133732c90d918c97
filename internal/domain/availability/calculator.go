// Package availability computes how many rooms of a type remain for a stay.
package availability

import (
	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/stay"

	"github.com/google/uuid"
)

// Occupancy is the part of a reservation that matters for availability.
type Occupancy struct {
	RoomTypeID uuid.UUID
	Period     stay.Period
	Status     reservation.Status
}

type Result struct {
	RoomTypeID uuid.UUID
	TotalRooms int
	Occupied   int
	RoomsLeft  int
	IsSoldOut  bool
}

// Calculator is stateless; the same inputs always produce the same result.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// RoomsLeft returns max(0, total - overlapping) for one room type.
func (c *Calculator) RoomsLeft(idx *inventory.Index, roomTypeID uuid.UUID, period stay.Period, occupancies []Occupancy) Result {
	total := idx.TotalInventory(roomTypeID)
	occupied := 0
	for _, o := range occupancies {
		if o.RoomTypeID != roomTypeID || !o.Status.HoldsInventory() {
			continue
		}
		if period.Overlaps(o.Period) {
			occupied++
		}
	}
	left := total - occupied
	if left < 0 {
		left = 0
	}
	return Result{
		RoomTypeID: roomTypeID,
		TotalRooms: total,
		Occupied:   occupied,
		RoomsLeft:  left,
		IsSoldOut:  left == 0,
	}
}

// Summarize evaluates every room type in the given order.
func (c *Calculator) Summarize(idx *inventory.Index, roomTypeIDs []uuid.UUID, period stay.Period, occupancies []Occupancy) []Result {
	out := make([]Result, 0, len(roomTypeIDs))
	for _, id := range roomTypeIDs {
		out = append(out, c.RoomsLeft(idx, id, period, occupancies))
	}
	return out
}

// Selectable drops sold-out entries; a sold-out type must never be offered for booking.
func Selectable(results []Result) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if !r.IsSoldOut {
			out = append(out, r)
		}
	}
	return out
}
