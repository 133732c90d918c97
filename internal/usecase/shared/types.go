package shared

import (
	"time"

	"hotel-reservation/internal/domain/authz"
	"hotel-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated principal of one request. It is built once at
// the HTTP boundary and passed down explicitly.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) Can(c authz.Capability) bool {
	return authz.Can(a.Role, c)
}

func (a Actor) CanAny(caps ...authz.Capability) bool {
	return authz.CanAny(a.Role, caps...)
}

// System is used for replays and internal reads that bypass ownership checks.
var System = Actor{Role: user.RoleSuperAdmin}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID          uuid.UUID
	GuestUserID *uuid.UUID
	CreatedBy   uuid.UUID
	Status      string
	TotalPrice  int64
	Currency    string
	CheckIn     time.Time
	CheckOut    time.Time
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	RoomType    string
}

// OwnedBy mirrors reservation.OwnedBy for callers that only hold a snapshot.
func (s *ReservationSnapshot) OwnedBy(actorID uuid.UUID) bool {
	if s.CreatedBy == actorID {
		return true
	}
	return s.GuestUserID != nil && *s.GuestUserID == actorID
}
