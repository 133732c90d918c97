package reservation

import (
	"errors"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/stay"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errs.ErrInvalidTransition
	ErrOutsideStayWindow = errors.New("check-in is only allowed during the stay")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrGuestRequired     = errors.New("guest is required")
	ErrRoomTypeRequired  = errors.New("room type is required")
	ErrEmptyStay         = errors.New("stay must be at least one night")
)

type Reservation struct {
	id         uuid.UUID
	guestID    uuid.UUID
	roomTypeID uuid.UUID
	createdBy  uuid.UUID
	period     stay.Period
	status     Status
	total      money.Money
	note       Note
	version    int32
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(
	guestID, roomTypeID, createdBy uuid.UUID,
	period stay.Period,
	total money.Money,
	note Note,
) (*Reservation, error) {
	if guestID == uuid.Nil {
		return nil, ErrGuestRequired
	}
	if roomTypeID == uuid.Nil {
		return nil, ErrRoomTypeRequired
	}
	if period.IsZero() {
		return nil, ErrEmptyStay
	}
	if total.Minor() < 0 {
		return nil, ErrNegativePrice
	}
	return &Reservation{
		id:         uuid.New(),
		guestID:    guestID,
		roomTypeID: roomTypeID,
		createdBy:  createdBy,
		period:     period,
		status:     StatusPending,
		total:      total,
		note:       note,
		version:    1,
	}, nil
}

func ReconstructReservation(
	id, guestID, roomTypeID, createdBy uuid.UUID,
	period stay.Period,
	status Status,
	total money.Money,
	note Note,
	version int32,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		guestID:    guestID,
		roomTypeID: roomTypeID,
		createdBy:  createdBy,
		period:     period,
		status:     status,
		total:      total,
		note:       note,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Confirm moves a pending reservation to CONFIRMED after payment or a
// pay-at-hotel decision.
func (r *Reservation) Confirm() error {
	return r.transition(StatusConfirmed, StatusPending)
}

func (r *Reservation) Cancel() error {
	return r.transition(StatusCancelled, StatusPending, StatusConfirmed)
}

// CheckIn marks arrival. With enforceWindow, today must fall inside the stay.
func (r *Reservation) CheckIn(today time.Time, enforceWindow bool) error {
	if r.status != StatusConfirmed {
		return r.invalid(StatusCheckedIn)
	}
	if enforceWindow && !r.period.Contains(today) {
		return ErrOutsideStayWindow
	}
	r.status = StatusCheckedIn
	return nil
}

func (r *Reservation) CheckOut() error {
	return r.transition(StatusCheckedOut, StatusCheckedIn)
}

func (r *Reservation) transition(to Status, from ...Status) error {
	for _, f := range from {
		if r.status == f {
			r.status = to
			return nil
		}
	}
	return r.invalid(to)
}

func (r *Reservation) invalid(to Status) error {
	return errs.Wrap(ErrInvalidTransition, string(r.status)+" -> "+string(to))
}

func (r *Reservation) HoldsInventory() bool {
	return r.status.HoldsInventory()
}

func (r *Reservation) OwnedBy(guestUserID *uuid.UUID, actorID uuid.UUID) bool {
	if r.createdBy == actorID {
		return true
	}
	return guestUserID != nil && *guestUserID == actorID
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) GuestID() uuid.UUID    { return r.guestID }
func (r *Reservation) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *Reservation) CreatedBy() uuid.UUID  { return r.createdBy }
func (r *Reservation) Period() stay.Period   { return r.period }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Total() money.Money    { return r.total }
func (r *Reservation) Note() Note            { return r.note }
func (r *Reservation) Version() int32        { return r.version }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
