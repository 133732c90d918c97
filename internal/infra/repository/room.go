package repository

import (
	"context"

	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error)
	UpdateRoomStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomStatusParams) (int64, error)
	ListRoomInventoryByType(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID) ([]sqlc.ListRoomInventoryByTypeRow, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (*room.Room, error) {
	row, err := r.queries.CreateRoom(ctx, tx, converter.RoomToInfra(rm))
	if err != nil {
		switch {
		case pgconv.IsUniqueViolation(err):
			return nil, infra.WrapRepoErr("room number already exists", err, infra.KindDuplicateKey)
		case pgconv.IsForeignKeyViolation(err):
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create room", err)
	}

	created, err := converter.RoomFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map room", err)
	}
	return created, nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status room.Status) error {
	affected, err := r.queries.UpdateRoomStatus(ctx, tx, sqlc.UpdateRoomStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) InventoryOf(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID) ([]inventory.RoomRef, error) {
	rows, err := r.queries.ListRoomInventoryByType(ctx, tx, roomTypeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room inventory", err)
	}

	refs := make([]inventory.RoomRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, inventory.RoomRef{
			RoomTypeID: row.RoomTypeID,
			Status:     room.Status(row.Status),
		})
	}
	return refs, nil
}
