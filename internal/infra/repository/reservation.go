package repository

import (
	"context"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/stay"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	ListOverlappingReservationsByRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingReservationsByRoomTypeParams) ([]sqlc.ListOverlappingReservationsByRoomTypeRow, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation references a missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}

	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ID:      res.ID(),
		Status:  res.Status().String(),
		Version: res.Version(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) ListOverlapping(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, period stay.Period) ([]availability.Occupancy, error) {
	rows, err := r.queries.ListOverlappingReservationsByRoomType(ctx, tx, sqlc.ListOverlappingReservationsByRoomTypeParams{
		RoomTypeID: roomTypeID,
		QueryEnd:   pgconv.DateToPgtype(period.CheckOut()),
		QueryStart: pgconv.DateToPgtype(period.CheckIn()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}

	out := make([]availability.Occupancy, 0, len(rows))
	for _, row := range rows {
		if o, ok := converter.OccupancyFromInfra(row.RoomTypeID, row.CheckIn, row.CheckOut, row.Status); ok {
			out = append(out, o)
		}
	}
	return out, nil
}
