package repository

import (
	"context"

	"hotel-reservation/internal/domain/roomtype"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomTypeWriteQueries interface {
	CreateRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomTypeParams) (sqlc.RoomTypes, error)
	LockRoomType(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomTypes, error)
	UpdateRoomTypeRates(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomTypeRatesParams) (int64, error)
}

type RoomTypeRepository struct {
	queries RoomTypeWriteQueries
	db      sqlc.DBTX
}

func NewRoomTypeRepository(queries RoomTypeWriteQueries, db sqlc.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) (*roomtype.RoomType, error) {
	row, err := r.queries.CreateRoomType(ctx, tx, converter.RoomTypeToInfra(rt))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("room type name already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create room type", err)
	}

	created, err := converter.RoomTypeFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map room type", err)
	}
	return created, nil
}

func (r *RoomTypeRepository) Lock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*roomtype.RoomType, error) {
	row, err := r.queries.LockRoomType(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room type", err)
	}

	rt, err := converter.RoomTypeFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map room type", err)
	}
	return rt, nil
}

func (r *RoomTypeRepository) UpdateRates(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) error {
	rates := rt.Rates()
	affected, err := r.queries.UpdateRoomTypeRates(ctx, tx, sqlc.UpdateRoomTypeRatesParams{
		ID:                rt.ID(),
		WeekdayPriceMinor: rates.Weekday.Minor(),
		WeekendPriceMinor: rates.Weekend.Minor(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update room type rates", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}
