// Package authz maps roles to named capabilities. Handlers and use cases ask
// whether a role can do something instead of comparing role names.
package authz

import (
	"sort"

	"hotel-reservation/internal/domain/user"
)

type Capability string

const (
	ViewBookings       Capability = "view_bookings"
	ViewOwnBookings    Capability = "view_own_bookings"
	CreateBooking      Capability = "create_booking"
	ManageBookings     Capability = "manage_bookings"
	CheckInGuests      Capability = "check_in_guests"
	ManageRooms        Capability = "manage_rooms"
	UpdateHousekeeping Capability = "update_housekeeping"
	ViewPayments       Capability = "view_payments"
	RecordPayments     Capability = "record_payments"
	ManageStaff        Capability = "manage_staff"
)

type set map[Capability]struct{}

func of(caps ...Capability) set {
	s := make(set, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

var frontDesk = []Capability{
	ViewBookings, CreateBooking, ManageBookings, CheckInGuests,
	UpdateHousekeeping, ViewPayments, RecordPayments,
}

var grants = map[user.Role]set{
	user.RoleSuperAdmin: of(append(frontDesk, ManageRooms, ManageStaff)...),
	user.RoleAdmin:      of(append(frontDesk, ManageRooms, ManageStaff)...),
	user.RoleStaff:      of(frontDesk...),
	user.RoleHousekeeper: of(
		UpdateHousekeeping,
	),
	user.RoleGuest: of(
		ViewOwnBookings, CreateBooking,
	),
}

// Can reports whether role holds capability. Unknown roles hold nothing.
func Can(role user.Role, c Capability) bool {
	caps, ok := grants[role]
	if !ok {
		return false
	}
	_, ok = caps[c]
	return ok
}

// CanAny is true when role holds at least one of caps.
func CanAny(role user.Role, caps ...Capability) bool {
	for _, c := range caps {
		if Can(role, c) {
			return true
		}
	}
	return false
}

// CapabilitiesOf lists the capabilities of role in a stable order.
func CapabilitiesOf(role user.Role) []Capability {
	caps := grants[role]
	out := make([]Capability, 0, len(caps))
	for c := range caps {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
