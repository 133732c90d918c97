package readstore

import (
	"context"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/stay"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	GetRoomType(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomTypes, error)
	ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.RoomTypes, error)
	ListRooms(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.ListRoomsRow, error)
	ListRoomInventory(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListRoomInventoryRow, error)
	ListOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingReservationsParams) ([]sqlc.ListOverlappingReservationsRow, error)
}

// CatalogReadStore serves room types, rooms and the raw inputs of the
// availability calculation. Every method takes the DBTX so several reads can
// share one read-only snapshot.
type CatalogReadStore struct {
	queries CatalogReadQueries
}

func NewCatalogReadStore(queries CatalogReadQueries) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
	}
}

func (r *CatalogReadStore) RoomTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.RoomTypeView, error) {
	row, err := r.queries.GetRoomType(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return toRoomTypeView(row), nil
}

func (r *CatalogReadStore) ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypes(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	result := make([]*queries.RoomTypeView, len(rows))
	for i, row := range rows {
		result[i] = toRoomTypeView(row)
	}
	return result, nil
}

func (r *CatalogReadStore) ListRooms(ctx context.Context, db sqlc.DBTX, status *string) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, db, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RoomView{
			ID:           row.ID,
			RoomNumber:   row.RoomNumber,
			RoomTypeID:   row.RoomTypeID,
			RoomTypeName: row.RoomTypeName,
			Floor:        row.Floor,
			Status:       row.Status,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

func (r *CatalogReadStore) ListInventory(ctx context.Context, db sqlc.DBTX) ([]inventory.RoomRef, error) {
	rows, err := r.queries.ListRoomInventory(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room inventory", err)
	}

	refs := make([]inventory.RoomRef, len(rows))
	for i, row := range rows {
		refs[i] = inventory.RoomRef{
			RoomTypeID: row.RoomTypeID,
			Status:     room.Status(row.Status),
		}
	}
	return refs, nil
}

func (r *CatalogReadStore) ListOverlapping(ctx context.Context, db sqlc.DBTX, period stay.Period) ([]availability.Occupancy, error) {
	rows, err := r.queries.ListOverlappingReservations(ctx, db, sqlc.ListOverlappingReservationsParams{
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

func toRoomTypeView(row sqlc.RoomTypes) *queries.RoomTypeView {
	amenities := row.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &queries.RoomTypeView{
		ID:           row.ID,
		Name:         row.Name,
		WeekdayPrice: row.WeekdayPriceMinor,
		WeekendPrice: row.WeekendPriceMinor,
		Capacity:     row.Capacity,
		Amenities:    amenities,
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageUrl),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
