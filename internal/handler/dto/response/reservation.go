package response

import (
	"time"

	"hotel-reservation/internal/domain/stay"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InvoiceResponse struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	AmountPaid int64     `json:"amount_paid"`
	Currency   string    `json:"currency"`
}

type ReservationResponse struct {
	ID              uuid.UUID        `json:"id"`
	GuestID         uuid.UUID        `json:"guest_id"`
	GuestName       string           `json:"guest_name"`
	GuestEmail      string           `json:"guest_email"`
	GuestPhone      *string          `json:"guest_phone,omitempty"`
	RoomTypeID      uuid.UUID        `json:"room_type_id"`
	RoomTypeName    string           `json:"room_type_name"`
	CheckInDate     string           `json:"check_in"`
	CheckOutDate    string           `json:"check_out"`
	Nights          int              `json:"nights"`
	Status          string           `json:"status"`
	TotalPrice      int64            `json:"total_price"`
	SpecialRequests *string          `json:"special_requests,omitempty"`
	Invoice         *InvoiceResponse `json:"invoice,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	RoomTypeID   uuid.UUID `json:"room_type_id"`
	RoomTypeName string    `json:"room_type_name"`
	CheckInDate  string    `json:"check_in"`
	CheckOutDate string    `json:"check_out"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationPageResponse struct {
	Items      []*ReservationListResponse `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

type TransitionResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Status        string    `json:"status"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var res ReservationResponse
	_ = copier.Copy(&res, v)
	res.CheckInDate = v.CheckIn.Format(stay.DateLayout)
	res.CheckOutDate = v.CheckOut.Format(stay.DateLayout)
	res.Nights = int(v.CheckOut.Sub(v.CheckIn).Hours() / 24)
	return &res
}

func FromReservationPage(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationPageResponse {
	out := make([]*ReservationListResponse, len(items))
	for i, it := range items {
		var item ReservationListResponse
		_ = copier.Copy(&item, it)
		item.CheckInDate = it.CheckIn.Format(stay.DateLayout)
		item.CheckOutDate = it.CheckOut.Format(stay.DateLayout)
		out[i] = &item
	}
	page := &ReservationPageResponse{Items: out}
	if next != nil {
		page.NextCursor = next.After
	}
	return page
}

func FromTransitionResult(r *commands.TransitionResult) *TransitionResponse {
	return &TransitionResponse{ReservationID: r.ReservationID, Status: r.Status.String()}
}
