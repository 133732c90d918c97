package readstore

import (
	"context"
	"time"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationViewsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsFirstPageParams) ([]sqlc.ListReservationViewsFirstPageRow, error)
	ListReservationViewsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsKeysetParams) ([]sqlc.ListReservationViewsKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func rowToReservationView(row sqlc.GetReservationViewRow) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:              row.ID,
		GuestID:         row.GuestID,
		GuestUserID:     pgconv.UUIDPtrFromPgtype(row.GuestUserID),
		GuestName:       joinName(row.GuestFirstName, row.GuestLastName),
		GuestEmail:      row.GuestEmail,
		GuestPhone:      pgconv.StringPtrFromPgtype(row.GuestPhone),
		RoomTypeID:      row.RoomTypeID,
		RoomTypeName:    row.RoomTypeName,
		CheckIn:         pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:        pgconv.DateFromPgtype(row.CheckOut),
		Status:          row.Status,
		TotalPrice:      row.TotalPrice,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		CreatedBy:       row.CreatedBy,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if row.InvoiceID.Valid {
		view.Invoice = &queries.InvoiceView{
			ID:         uuid.UUID(row.InvoiceID.Bytes),
			Status:     pgconv.StringFromPgtype(row.InvoiceStatus),
			AmountPaid: row.InvoiceAmountPaid.Int64,
			Currency:   pgconv.StringFromPgtype(row.InvoiceCurrency),
		}
	}

	return view
}

// FindFirstPage lists newest first. A nil ownerID lists every guest's reservations.
func (r *ReservationReadStore) FindFirstPage(ctx context.Context, ownerID *uuid.UUID, status *string, limit int32) ([]*queries.ReservationListItem, error) {
	params := sqlc.ListReservationViewsFirstPageParams{
		OwnerID:  pgconv.UUIDPtrToPgtype(ownerID),
		Status:   pgconv.StringPtrToPgtype(status),
		RowLimit: limit,
	}

	rows, err := r.queries.ListReservationViewsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations first page", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = toReservationListItem(row.ID, row.GuestFirstName, row.GuestLastName, row.GuestEmail,
			row.RoomTypeID, row.RoomTypeName, row.CheckIn, row.CheckOut, row.Status, row.TotalPrice, row.CreatedAt)
	}

	return result, nil
}

func (r *ReservationReadStore) FindKeyset(ctx context.Context, ownerID *uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	params := sqlc.ListReservationViewsKeysetParams{
		OwnerID:       pgconv.UUIDPtrToPgtype(ownerID),
		Status:        pgconv.StringPtrToPgtype(status),
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	}

	rows, err := r.queries.ListReservationViewsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations keyset", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = toReservationListItem(row.ID, row.GuestFirstName, row.GuestLastName, row.GuestEmail,
			row.RoomTypeID, row.RoomTypeName, row.CheckIn, row.CheckOut, row.Status, row.TotalPrice, row.CreatedAt)
	}

	return result, nil
}

func toReservationListItem(
	id uuid.UUID,
	firstName, lastName, email string,
	roomTypeID uuid.UUID,
	roomTypeName string,
	checkIn, checkOut pgtype.Date,
	status string,
	total int64,
	createdAt pgtype.Timestamptz,
) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:           id,
		GuestName:    joinName(firstName, lastName),
		GuestEmail:   email,
		RoomTypeID:   roomTypeID,
		RoomTypeName: roomTypeName,
		CheckIn:      pgconv.DateFromPgtype(checkIn),
		CheckOut:     pgconv.DateFromPgtype(checkOut),
		Status:       status,
		TotalPrice:   total,
		CreatedAt:    pgconv.TimeFromPgtype(createdAt),
	}
}

func joinName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
