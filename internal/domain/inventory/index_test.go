//go:build unit

package inventory_test

import (
	"testing"

	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_TotalInventory(t *testing.T) {
	suite := uuid.New()
	deluxe := uuid.New()
	rooms := []inventory.RoomRef{
		{RoomTypeID: suite, Status: room.StatusClean},
		{RoomTypeID: suite, Status: room.StatusDirty},
		{RoomTypeID: suite, Status: room.StatusMaintenance},
		{RoomTypeID: deluxe, Status: room.StatusInProgress},
	}

	t.Run("all rooms counted by default", func(t *testing.T) {
		idx := inventory.NewIndex(rooms, inventory.CountAllRooms)
		assert.Equal(t, 3, idx.TotalInventory(suite))
		assert.Equal(t, 1, idx.TotalInventory(deluxe))
	})

	t.Run("maintenance rooms excluded", func(t *testing.T) {
		idx := inventory.NewIndex(rooms, inventory.ExcludeMaintenance)
		assert.Equal(t, 2, idx.TotalInventory(suite))
		assert.Equal(t, 1, idx.TotalInventory(deluxe))
	})

	t.Run("unknown room type has no inventory", func(t *testing.T) {
		idx := inventory.NewIndex(rooms, inventory.CountAllRooms)
		assert.Zero(t, idx.TotalInventory(uuid.New()))
	})

	t.Run("empty hotel", func(t *testing.T) {
		idx := inventory.NewIndex(nil, inventory.CountAllRooms)
		assert.Zero(t, idx.TotalInventory(suite))
	})
}

func TestParseCountPolicy(t *testing.T) {
	p, err := inventory.ParseCountPolicy("")
	require.NoError(t, err)
	assert.Equal(t, inventory.CountAllRooms, p)

	p, err = inventory.ParseCountPolicy(" Exclude_Maintenance ")
	require.NoError(t, err)
	assert.Equal(t, inventory.ExcludeMaintenance, p)

	_, err = inventory.ParseCountPolicy("clean_only")
	assert.ErrorIs(t, err, inventory.ErrInvalidCountPolicy)
}
