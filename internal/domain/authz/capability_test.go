//go:build unit

package authz_test

import (
	"testing"

	"hotel-reservation/internal/domain/authz"
	"hotel-reservation/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role    user.Role
		allowed []authz.Capability
		denied  []authz.Capability
	}{
		{
			role:    user.RoleAdmin,
			allowed: []authz.Capability{authz.ManageRooms, authz.ManageBookings, authz.ManageStaff, authz.RecordPayments},
			denied:  []authz.Capability{authz.ViewOwnBookings},
		},
		{
			role:    user.RoleStaff,
			allowed: []authz.Capability{authz.ViewBookings, authz.CreateBooking, authz.CheckInGuests, authz.RecordPayments},
			denied:  []authz.Capability{authz.ManageRooms, authz.ManageStaff},
		},
		{
			role:    user.RoleHousekeeper,
			allowed: []authz.Capability{authz.UpdateHousekeeping},
			denied:  []authz.Capability{authz.ManageBookings, authz.ViewBookings, authz.CreateBooking, authz.RecordPayments},
		},
		{
			role:    user.RoleGuest,
			allowed: []authz.Capability{authz.ViewOwnBookings, authz.CreateBooking},
			denied:  []authz.Capability{authz.ViewBookings, authz.ManageBookings, authz.CheckInGuests, authz.UpdateHousekeeping},
		},
		{
			role:   user.Role("viewer"),
			denied: []authz.Capability{authz.ViewOwnBookings, authz.CreateBooking},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			for _, c := range tt.allowed {
				assert.True(t, authz.Can(tt.role, c), "expected %s to hold %s", tt.role, c)
			}
			for _, c := range tt.denied {
				assert.False(t, authz.Can(tt.role, c), "expected %s to lack %s", tt.role, c)
			}
		})
	}
}

func TestCanAny(t *testing.T) {
	assert.True(t, authz.CanAny(user.RoleGuest, authz.ViewBookings, authz.ViewOwnBookings))
	assert.False(t, authz.CanAny(user.RoleHousekeeper, authz.ViewBookings, authz.ViewOwnBookings))
	assert.False(t, authz.CanAny(user.RoleAdmin))
}

func TestCapabilitiesOf(t *testing.T) {
	assert.Equal(t,
		[]authz.Capability{authz.CreateBooking, authz.ViewOwnBookings},
		authz.CapabilitiesOf(user.RoleGuest),
	)
	assert.Empty(t, authz.CapabilitiesOf(user.Role("viewer")))
}
