//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/stay"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	GuestID      uuid.UUID
	GuestUserID  *uuid.UUID
	GuestName    string
	GuestEmail   string
	RoomTypeID   uuid.UUID
	RoomTypeName string
	CheckIn      string
	CheckOut     string
	Status       reservation.Status
	TotalPrice   int64
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           uuid.New(),
		GuestID:      uuid.New(),
		GuestName:    "Ada Lovelace",
		GuestEmail:   "ada@example.com",
		RoomTypeID:   uuid.New(),
		RoomTypeName: "Ocean Suite",
		CheckIn:      "2025-06-01",
		CheckOut:     "2025-06-04",
		Status:       reservation.StatusPending,
		TotalPrice:   3_300_000,
		CreatedBy:    uuid.New(),
		CreatedAt:    time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) OwnedBy(userID uuid.UUID) *ReservationBuilder {
	r.GuestUserID = &userID
	r.CreatedBy = userID
	return r
}

func (r *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	r.Status = s
	return r
}

// Build methods
func (r *ReservationBuilder) BuildCreateRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomTypeID: r.RoomTypeID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
	}
}

func (r *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		RoomTypeID: r.RoomTypeID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
	}
}

func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID, r.GuestID, r.RoomTypeID, r.CreatedBy,
		r.BuildPeriod(),
		r.Status,
		money.FromMinor(r.TotalPrice),
		reservation.Note{},
		1,
		r.CreatedAt, r.CreatedAt,
	)
}

func (r *ReservationBuilder) BuildPeriod() stay.Period {
	p, err := stay.ParsePeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		panic(err)
	}
	return p
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	p := r.BuildPeriod()
	return &queries.ReservationView{
		ID:           r.ID,
		GuestID:      r.GuestID,
		GuestUserID:  r.GuestUserID,
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomTypeName,
		CheckIn:      p.CheckIn(),
		CheckOut:     p.CheckOut(),
		Status:       r.Status.String(),
		TotalPrice:   r.TotalPrice,
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	p := r.BuildPeriod()
	return &queries.ReservationListItem{
		ID:           r.ID,
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomTypeName,
		CheckIn:      p.CheckIn(),
		CheckOut:     p.CheckOut(),
		Status:       r.Status.String(),
		TotalPrice:   r.TotalPrice,
		CreatedAt:    r.CreatedAt,
	}
}
