package converter

import (
	"fmt"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/stay"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	period := res.Period()

	params := sqlc.CreateReservationParams{
		ID:         res.ID(),
		GuestID:    res.GuestID(),
		RoomTypeID: res.RoomTypeID(),
		CheckIn:    pgconv.DateToPgtype(period.CheckIn()),
		CheckOut:   pgconv.DateToPgtype(period.CheckOut()),
		Status:     res.Status().String(),
		TotalPrice: res.Total().Minor(),
		CreatedBy:  res.CreatedBy(),
		Version:    res.Version(),
	}

	noteStr := res.Note().String()
	if noteStr != "" {
		params.SpecialRequests = pgtype.Text{String: noteStr, Valid: true}
	} else {
		params.SpecialRequests = pgtype.Text{Valid: false}
	}

	return params
}

func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	period, err := stay.NewPeriod(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, fmt.Errorf("stored reservation %s has an invalid stay: %w", row.ID, err)
	}

	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("stored reservation %s: %w", row.ID, err)
	}

	note, err := reservation.NewNote(pgconv.StringFromPgtype(row.SpecialRequests))
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.GuestID,
		row.RoomTypeID,
		row.CreatedBy,
		period,
		status,
		money.FromMinor(row.TotalPrice),
		note,
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// OccupancyFromInfra skips rows whose stored dates or status cannot be parsed;
// the CHECK constraints make that unreachable in practice.
func OccupancyFromInfra(roomTypeID uuid.UUID, checkIn, checkOut pgtype.Date, status string) (availability.Occupancy, bool) {
	period, err := stay.NewPeriod(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return availability.Occupancy{}, false
	}
	st, err := reservation.ParseStatus(status)
	if err != nil {
		return availability.Occupancy{}, false
	}
	return availability.Occupancy{
		RoomTypeID: roomTypeID,
		Period:     period,
		Status:     st,
	}, true
}
