//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	b := builder.NewReservationBuilder()
	p := b.BuildPeriod()
	guestID, roomTypeID, staffID := uuid.New(), uuid.New(), uuid.New()

	t.Run("starts pending", func(t *testing.T) {
		res, err := reservation.NewReservation(guestID, roomTypeID, staffID, p, money.FromMinor(100), reservation.Note{})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, int64(100), res.Total().Minor())
		assert.True(t, res.HoldsInventory())
	})

	tests := []struct {
		name  string
		build func() error
		errIs error
	}{
		{
			name: "missing guest",
			build: func() error {
				_, err := reservation.NewReservation(uuid.Nil, roomTypeID, staffID, p, money.Zero(), reservation.Note{})
				return err
			},
			errIs: reservation.ErrGuestRequired,
		},
		{
			name: "missing room type",
			build: func() error {
				_, err := reservation.NewReservation(guestID, uuid.Nil, staffID, p, money.Zero(), reservation.Note{})
				return err
			},
			errIs: reservation.ErrRoomTypeRequired,
		},
		{
			name: "negative total",
			build: func() error {
				_, err := reservation.NewReservation(guestID, roomTypeID, staffID, p, money.FromMinor(-1), reservation.Note{})
				return err
			},
			errIs: reservation.ErrNegativePrice,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.build(), tt.errIs)
		})
	}
}

func TestReservation_Lifecycle(t *testing.T) {
	duringStay := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	beforeStay := time.Date(2025, 5, 20, 14, 0, 0, 0, time.UTC)

	t.Run("happy path", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildDomain()

		require.NoError(t, res.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.NoError(t, res.CheckIn(duringStay, true))
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
		require.NoError(t, res.CheckOut())
		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
		assert.True(t, res.Status().IsTerminal())
		assert.True(t, res.HoldsInventory())
	})

	tests := []struct {
		name  string
		from  reservation.Status
		act   func(*reservation.Reservation) error
		want  reservation.Status
		errIs error
	}{
		{name: "confirm pending", from: reservation.StatusPending, act: (*reservation.Reservation).Confirm, want: reservation.StatusConfirmed},
		{name: "confirm twice", from: reservation.StatusConfirmed, act: (*reservation.Reservation).Confirm, errIs: reservation.ErrInvalidTransition},
		{name: "confirm cancelled", from: reservation.StatusCancelled, act: (*reservation.Reservation).Confirm, errIs: reservation.ErrInvalidTransition},
		{name: "cancel pending", from: reservation.StatusPending, act: (*reservation.Reservation).Cancel, want: reservation.StatusCancelled},
		{name: "cancel confirmed", from: reservation.StatusConfirmed, act: (*reservation.Reservation).Cancel, want: reservation.StatusCancelled},
		{name: "cancel checked in", from: reservation.StatusCheckedIn, act: (*reservation.Reservation).Cancel, errIs: reservation.ErrInvalidTransition},
		{name: "cancel cancelled", from: reservation.StatusCancelled, act: (*reservation.Reservation).Cancel, errIs: reservation.ErrInvalidTransition},
		{name: "check out without check in", from: reservation.StatusConfirmed, act: (*reservation.Reservation).CheckOut, errIs: reservation.ErrInvalidTransition},
		{
			name:  "check in pending",
			from:  reservation.StatusPending,
			act:   func(r *reservation.Reservation) error { return r.CheckIn(duringStay, false) },
			errIs: reservation.ErrInvalidTransition,
		},
		{
			name:  "check in before the stay",
			from:  reservation.StatusConfirmed,
			act:   func(r *reservation.Reservation) error { return r.CheckIn(beforeStay, true) },
			errIs: reservation.ErrOutsideStayWindow,
		},
		{
			name: "check in early without window",
			from: reservation.StatusConfirmed,
			act:  func(r *reservation.Reservation) error { return r.CheckIn(beforeStay, false) },
			want: reservation.StatusCheckedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := builder.NewReservationBuilder().WithStatus(tt.from).BuildDomain()
			err := tt.act(res)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.from, res.Status(), "failed transition must not change status")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status())
		})
	}

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		res := builder.NewReservationBuilder().WithStatus(reservation.StatusCheckedOut).BuildDomain()
		err := res.Cancel()
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Contains(t, err.Error(), "CHECKED_OUT -> CANCELLED")
	})

	t.Run("cancelled stops holding inventory", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, res.Cancel())
		assert.False(t, res.HoldsInventory())
	})
}

func TestReservation_OwnedBy(t *testing.T) {
	guestUser := uuid.New()
	res := builder.NewReservationBuilder().OwnedBy(guestUser).BuildDomain()

	assert.True(t, res.OwnedBy(&guestUser, guestUser))
	assert.False(t, res.OwnedBy(&guestUser, uuid.New()))

	staffMade := builder.NewReservationBuilder().BuildDomain()
	assert.True(t, staffMade.OwnedBy(nil, staffMade.CreatedBy()))
	assert.False(t, staffMade.OwnedBy(nil, guestUser))
}

func TestParseStatus(t *testing.T) {
	s, err := reservation.ParseStatus(" checked_in ")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCheckedIn, s)
	assert.Equal(t, "checked_in", s.Topic())

	_, err = reservation.ParseStatus("NO_SHOW")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestNewNote(t *testing.T) {
	n, err := reservation.NewNote("  late arrival  ")
	require.NoError(t, err)
	assert.Equal(t, "late arrival", n.String())

	_, err = reservation.NewNote(strings.Repeat("é", 1000))
	assert.NoError(t, err)

	_, err = reservation.NewNote(strings.Repeat("a", 1001))
	assert.ErrorIs(t, err, reservation.ErrNoteTooLong)
}
