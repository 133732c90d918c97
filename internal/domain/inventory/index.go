// Package inventory derives per room type capacity from the physical room list.
package inventory

import (
	"errors"
	"strings"

	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
)

var ErrInvalidCountPolicy = errors.New("invalid inventory count policy")

// CountPolicy decides which rooms contribute to a room type's inventory.
type CountPolicy string

const (
	CountAllRooms      CountPolicy = "all"
	ExcludeMaintenance CountPolicy = "exclude_maintenance"
)

func ParseCountPolicy(s string) (CountPolicy, error) {
	switch p := CountPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", CountAllRooms:
		return CountAllRooms, nil
	case ExcludeMaintenance:
		return p, nil
	default:
		return "", ErrInvalidCountPolicy
	}
}

func (p CountPolicy) counts(status room.Status) bool {
	if p == ExcludeMaintenance {
		return status != room.StatusMaintenance
	}
	return true
}

type RoomRef struct {
	RoomTypeID uuid.UUID
	Status     room.Status
}

// Index is an immutable count of rooms per room type.
type Index struct {
	totals map[uuid.UUID]int
	policy CountPolicy
}

func NewIndex(rooms []RoomRef, policy CountPolicy) *Index {
	totals := make(map[uuid.UUID]int)
	for _, r := range rooms {
		if policy.counts(r.Status) {
			totals[r.RoomTypeID]++
		}
	}
	return &Index{totals: totals, policy: policy}
}

// TotalInventory returns the number of rooms of the given type, 0 when unknown.
func (i *Index) TotalInventory(roomTypeID uuid.UUID) int {
	return i.totals[roomTypeID]
}

func (i *Index) Policy() CountPolicy { return i.policy }
