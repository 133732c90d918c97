package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/authz"
	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/guest"
	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/invoice"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/stay"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createReservationEndpoint = "POST /api/reservations"

	idempotencyStatusCompleted  = "completed"
	idempotencyStatusProcessing = "processing"

	outcomeCreated  = "created"
	outcomeReplayed = "replayed"
	outcomeSoldOut  = "sold_out"
	outcomeFailed   = "failed"
)

var ErrRoomTypeNotFound = errs.Mark(errs.New("room type not found"), errs.ErrNotFound)

type CreateReservationInput struct {
	RoomTypeID      uuid.UUID `json:"room_type_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	SpecialRequests string    `json:"special_requests"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type TransitionResult struct {
	ReservationID uuid.UUID
	Status        reservation.Status
}

type ReservationPolicy struct {
	CountPolicy          inventory.CountPolicy
	Currency             string
	EnforceCheckInWindow bool
	IdempotencyTTL       time.Duration
	MaxNights            int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, actor shared.Actor, in CreateReservationInput, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TransitionResult, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TransitionResult, error)
	CheckIn(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TransitionResult, error)
	CheckOut(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TransitionResult, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	factory            *reservation.Factory
	calculator         *availability.Calculator
	reservationQueries queries.ReservationQueries
	metrics            shared.Metrics
	clock              clock.Clock
	policy             ReservationPolicy
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	calculator *availability.Calculator,
	reservationQueries queries.ReservationQueries,
	metrics shared.Metrics,
	clock clock.Clock,
	policy ReservationPolicy,
) ReservationCommands {
	if policy.IdempotencyTTL <= 0 {
		policy.IdempotencyTTL = 24 * time.Hour
	}
	if policy.MaxNights <= 0 || policy.MaxNights > stay.MaxNights {
		policy.MaxNights = stay.MaxNights
	}
	return &reservationCommandsImpl{
		uow:                uow,
		factory:            factory,
		calculator:         calculator,
		reservationQueries: reservationQueries,
		metrics:            metrics,
		clock:              clock,
		policy:             policy,
	}
}

func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	actor shared.Actor,
	in CreateReservationInput,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	if !actor.Can(authz.CreateBooking) {
		return nil, errs.ErrForbidden
	}
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	period, err := stay.ParsePeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if period.Nights() > c.policy.MaxNights {
		return nil, errs.Wrapf(stay.ErrInvalidDateRange, "stays are limited to %d nights", c.policy.MaxNights)
	}

	requestHash := calculateRequestHash(in)

	replayed, err := c.claimIdempotencyKey(ctx, idempotencyKey, actor.UserID, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		c.metrics.ReservationAttempt(outcomeReplayed)
		return &CreateReservationResult{Reservation: replayed, IsReplayed: true}, nil
	}

	reservationID, err := c.reserve(ctx, actor, in, period, idempotencyKey, requestHash)
	if err != nil {
		c.releaseIdempotencyKey(ctx, idempotencyKey, actor.UserID)
		if errs.Is(err, errs.ErrSoldOut) {
			c.metrics.ReservationAttempt(outcomeSoldOut)
		} else {
			c.metrics.ReservationAttempt(outcomeFailed)
		}
		return nil, err
	}
	c.metrics.ReservationAttempt(outcomeCreated)

	// Read-after-write from the read side
	view, err := c.reservationQueries.GetByID(ctx, shared.System, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateReservationResult{Reservation: view}, nil
}

// claimIdempotencyKey returns the stored reservation when the key was already
// completed with the same request. A nil view and nil error means the caller
// owns the key and should proceed.
func (c *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
) (*queries.ReservationView, error) {
	now := c.clock.Now()
	expiresAt := now.Add(c.policy.IdempotencyTTL)

	var inserted bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var insertErr error
		inserted, insertErr = tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createReservationEndpoint, requestHash, expiresAt)
		return insertErr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := c.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if existing.ExpiresAt.Before(now) {
		var claimed int64
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var claimErr error
			claimed, claimErr = tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, createReservationEndpoint, requestHash, expiresAt)
			return claimErr
		})
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if claimed == 1 {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash || existing.Endpoint != createReservationEndpoint {
		return nil, errs.ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case idempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.New("completed request missing result reservation ID")
		}
		view, err := c.reservationQueries.GetByID(ctx, shared.System, *existing.ResultReservationID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return view, nil

	case idempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *reservationCommandsImpl) releaseIdempotencyKey(ctx context.Context, key, userID uuid.UUID) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, userID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key, "error", err.Error())
	}
}

// reserve re-checks availability and writes the reservation in one transaction.
// The room type row lock serializes concurrent creations for the same type.
func (c *reservationCommandsImpl) reserve(
	ctx context.Context,
	actor shared.Actor,
	in CreateReservationInput,
	period stay.Period,
	idempotencyKey uuid.UUID,
	requestHash string,
) (uuid.UUID, error) {
	note, err := reservation.NewNote(in.SpecialRequests)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var reservationID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().Lock(ctx, tx.DB(), in.RoomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		rooms, err := tx.Rooms().InventoryOf(ctx, tx.DB(), rt.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		occupancies, err := tx.Reservations().ListOverlapping(ctx, tx.DB(), rt.ID(), period)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result := c.calculator.RoomsLeft(inventory.NewIndex(rooms, c.policy.CountPolicy), rt.ID(), period, occupancies)
		if result.IsSoldOut {
			return errs.ErrSoldOut
		}

		guestID, err := c.resolveGuest(ctx, tx, actor, in)
		if err != nil {
			return err
		}

		res, _, err := c.factory.CreateReservation(rt, guestID, actor.UserID, period, note)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		inv := invoice.NewInvoice(reservationID, res.Total(), c.policy.Currency, period.CheckIn())
		if err := tx.Invoices().Create(ctx, tx.DB(), inv); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := c.enqueue(ctx, tx, "reservation_created", map[string]any{
			"reservation_id": reservationID,
			"guest_email":    in.GuestEmail,
			"room_type":      rt.Name(),
			"check_in":       period.CheckIn().Format(stay.DateLayout),
			"check_out":      period.CheckOut().Format(stay.DateLayout),
			"total":          res.Total().Decimal(),
			"currency":       c.policy.Currency,
		}); err != nil {
			return err
		}

		return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, actor.UserID, calculateIDHash(reservationID), reservationID)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("reservation created",
		"reservation_id", reservationID,
		"room_type_id", in.RoomTypeID,
		"period", period.String(),
		"user_id", actor.UserID)

	return reservationID, nil
}

// resolveGuest finds the guest by email or registers them. Any storage failure
// here is a dependency failure and aborts before the reservation is written.
func (c *reservationCommandsImpl) resolveGuest(ctx context.Context, tx shared.Tx, actor shared.Actor, in CreateReservationInput) (uuid.UUID, error) {
	var linkedUser *uuid.UUID
	if !actor.Role.IsStaff() && actor.UserID != uuid.Nil {
		id := actor.UserID
		linkedUser = &id
	}

	candidate, err := guest.NewGuest(in.GuestName, in.GuestEmail, in.GuestPhone, linkedUser)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	existing, err := tx.Guests().FindByEmail(ctx, tx.DB(), candidate.Email())
	if err == nil {
		return existing.ID(), nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "guest lookup failed"), errs.ErrDependencyFailed)
	}

	id, err := tx.Guests().Create(ctx, tx.DB(), candidate)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "guest registration failed"), errs.ErrDependencyFailed)
	}
	return id, nil
}

func (c *reservationCommandsImpl) Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TransitionResult, error) {
	if !actor.Can(authz.ManageBookings) {
		return nil, errs.ErrForbidden
	}
	return c.transition(ctx, actor, id, nil, func(res *reservation.Reservation) error {
		return res.Confirm()
	})
}

// Cancel is open to staff with manage_bookings and to the guest who owns the booking.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TransitionResult, error) {
	if !actor.CanAny(authz.ManageBookings, authz.ViewOwnBookings) {
		return nil, errs.ErrForbidden
	}
	authorize := func(snap *shared.ReservationSnapshot) error {
		if actor.Can(authz.ManageBookings) || snap.OwnedBy(actor.UserID) {
			return nil
		}
		return errs.ErrForbidden
	}
	return c.transition(ctx, actor, id, authorize, func(res *reservation.Reservation) error {
		return res.Cancel()
	})
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TransitionResult, error) {
	if !actor.Can(authz.CheckInGuests) {
		return nil, errs.ErrForbidden
	}
	today := stay.Day(c.clock.Now())
	return c.transition(ctx, actor, id, nil, func(res *reservation.Reservation) error {
		if err := res.CheckIn(today, c.policy.EnforceCheckInWindow); err != nil {
			if errs.Is(err, reservation.ErrOutsideStayWindow) {
				return errs.Mark(err, errs.ErrInvalidTransition)
			}
			return err
		}
		return nil
	})
}

func (c *reservationCommandsImpl) CheckOut(ctx context.Context, actor shared.Actor, id uuid.UUID) (*TransitionResult, error) {
	if !actor.Can(authz.CheckInGuests) {
		return nil, errs.ErrForbidden
	}
	return c.transition(ctx, actor, id, nil, func(res *reservation.Reservation) error {
		return res.CheckOut()
	})
}

// transition locks the reservation, applies one lifecycle event and writes it
// back with a version check.
func (c *reservationCommandsImpl) transition(
	ctx context.Context,
	actor shared.Actor,
	id uuid.UUID,
	authorize func(*shared.ReservationSnapshot) error,
	apply func(*reservation.Reservation) error,
) (*TransitionResult, error) {
	var result TransitionResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if authorize != nil {
			snap, err := tx.Reads().ReservationByID(ctx, id)
			if err != nil {
				return mapReservationLoadErr(err)
			}
			if err := authorize(snap); err != nil {
				return err
			}
		}

		res, err := tx.Reservations().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return mapReservationLoadErr(err)
		}

		from := res.Status()
		if err := apply(res); err != nil {
			return err
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrConcurrentModification)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := c.enqueue(ctx, tx, "reservation_"+res.Status().Topic(), map[string]any{
			"reservation_id": res.ID(),
			"from":           from.String(),
			"to":             res.Status().String(),
			"actor_id":       actor.UserID,
		}); err != nil {
			return err
		}

		result = TransitionResult{ReservationID: res.ID(), Status: res.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.ReservationTransition(result.Status.String())
	slog.Info("reservation transitioned",
		"reservation_id", result.ReservationID,
		"status", result.Status.String(),
		"user_id", actor.UserID)

	return &result, nil
}

func (c *reservationCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, payload map[string]any) error {
	return enqueueNotification(ctx, tx, c.clock, topic, payload)
}

func enqueueNotification(ctx context.Context, tx shared.Tx, clk clock.Clock, topic string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, body, clk.Now()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func mapReservationLoadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func calculateRequestHash(in CreateReservationInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
