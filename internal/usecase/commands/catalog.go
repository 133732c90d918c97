package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/authz"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/roomtype"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.Mark(errs.New("room not found"), errs.ErrNotFound)

type CreateRoomTypeInput struct {
	Name         string
	WeekdayPrice int64
	WeekendPrice int64
	Capacity     int
	Amenities    []string
	ImageURL     string
}

// UpdateRatesInput is a partial patch; nil leaves the rate unchanged.
type UpdateRatesInput struct {
	WeekdayPrice *int64
	WeekendPrice *int64
}

type CreateRoomInput struct {
	RoomNumber string
	RoomTypeID uuid.UUID
	Floor      int
}

type CatalogCommands interface {
	CreateRoomType(ctx context.Context, actor shared.Actor, in CreateRoomTypeInput) (*queries.RoomTypeView, error)
	UpdateRoomTypeRates(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateRatesInput) (*queries.RoomTypeView, error)
	CreateRoom(ctx context.Context, actor shared.Actor, in CreateRoomInput) (*queries.RoomView, error)
	UpdateRoomStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string) error
}

type catalogCommandsImpl struct {
	uow            shared.UnitOfWork
	catalogQueries queries.CatalogQueries
	clock          clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, catalogQueries queries.CatalogQueries, clock clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{
		uow:            uow,
		catalogQueries: catalogQueries,
		clock:          clock,
	}
}

func (c *catalogCommandsImpl) CreateRoomType(ctx context.Context, actor shared.Actor, in CreateRoomTypeInput) (*queries.RoomTypeView, error) {
	if !actor.Can(authz.ManageRooms) {
		return nil, errs.ErrForbidden
	}

	rates, err := roomtype.NewRates(in.WeekdayPrice, in.WeekendPrice)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	rt, err := roomtype.NewRoomType(in.Name, rates, in.Capacity, in.Amenities, in.ImageURL)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var created *roomtype.RoomType
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.RoomTypes().Create(ctx, tx.DB(), rt)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyExists)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("room type created", "room_type_id", created.ID(), "name", created.Name(), "user_id", actor.UserID)
	return c.catalogQueries.GetRoomType(ctx, created.ID())
}

func (c *catalogCommandsImpl) UpdateRoomTypeRates(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateRatesInput) (*queries.RoomTypeView, error) {
	if !actor.Can(authz.ManageRooms) {
		return nil, errs.ErrForbidden
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().Lock(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrRoomTypeNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := rt.ChangeRates(in.WeekdayPrice, in.WeekendPrice); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.RoomTypes().UpdateRates(ctx, tx.DB(), rt); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrRoomTypeNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("room type rates updated", "room_type_id", id, "user_id", actor.UserID)
	return c.catalogQueries.GetRoomType(ctx, id)
}

func (c *catalogCommandsImpl) CreateRoom(ctx context.Context, actor shared.Actor, in CreateRoomInput) (*queries.RoomView, error) {
	if !actor.Can(authz.ManageRooms) {
		return nil, errs.ErrForbidden
	}

	rm, err := room.NewRoom(in.RoomNumber, in.RoomTypeID, in.Floor)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var created *room.Room
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Rooms().Create(ctx, tx.DB(), rm)
		switch {
		case err == nil:
			return nil
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, errs.ErrAlreadyExists)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return queries.ErrRoomTypeNotFound
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	})
	if err != nil {
		return nil, err
	}

	rt, err := c.catalogQueries.GetRoomType(ctx, created.RoomTypeID())
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	slog.Info("room created", "room_id", created.ID(), "room_number", created.Number(), "user_id", actor.UserID)
	return &queries.RoomView{
		ID:           created.ID(),
		RoomNumber:   created.Number(),
		RoomTypeID:   created.RoomTypeID(),
		RoomTypeName: rt.Name,
		Floor:        int32(created.Floor()), // #nosec G115 -- floors are small
		Status:       created.Status().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateRoomStatus records housekeeping progress. It does not touch availability.
func (c *catalogCommandsImpl) UpdateRoomStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string) error {
	if !actor.Can(authz.UpdateHousekeeping) {
		return errs.ErrForbidden
	}

	st, err := room.ParseStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().UpdateStatus(ctx, tx.DB(), id, st); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("room status updated", "room_id", id, "status", st.String(), "user_id", actor.UserID)
	return nil
}
