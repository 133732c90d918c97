package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type RoomTypeView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	WeekdayPrice int64     `json:"weekday_price"`
	WeekendPrice int64     `json:"weekend_price"`
	Capacity     int32     `json:"capacity"`
	Amenities    []string  `json:"amenities"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RoomView struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   string    `json:"room_number"`
	RoomTypeID   uuid.UUID `json:"room_type_id"`
	RoomTypeName string    `json:"room_type_name"`
	Floor        int32     `json:"floor"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AvailabilityView is one room type's availability for a requested stay,
// with the price the stay would be quoted at today.
type AvailabilityView struct {
	RoomType   RoomTypeView `json:"room_type"`
	TotalRooms int          `json:"total_rooms"`
	RoomsLeft  int          `json:"rooms_left"`
	IsSoldOut  bool         `json:"is_sold_out"`
	Nights     int          `json:"nights"`
	Subtotal   int64        `json:"subtotal"`
	Tax        int64        `json:"tax"`
	Total      int64        `json:"total"`
	Currency   string       `json:"currency"`
}

type AvailabilityFilter struct {
	CheckIn       string
	CheckOut      string
	Guests        int
	AvailableOnly bool
}

type ReservationView struct {
	ID              uuid.UUID    `json:"id"`
	GuestID         uuid.UUID    `json:"guest_id"`
	GuestUserID     *uuid.UUID   `json:"guest_user_id,omitempty"`
	GuestName       string       `json:"guest_name"`
	GuestEmail      string       `json:"guest_email"`
	GuestPhone      *string      `json:"guest_phone,omitempty"`
	RoomTypeID      uuid.UUID    `json:"room_type_id"`
	RoomTypeName    string       `json:"room_type_name"`
	CheckIn         time.Time    `json:"check_in"`
	CheckOut        time.Time    `json:"check_out"`
	Status          string       `json:"status"`
	TotalPrice      int64        `json:"total_price"`
	SpecialRequests *string      `json:"special_requests,omitempty"`
	CreatedBy       uuid.UUID    `json:"created_by"`
	Invoice         *InvoiceView `json:"invoice,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type InvoiceView struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	AmountPaid int64     `json:"amount_paid"`
	Currency   string    `json:"currency"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	RoomTypeID   uuid.UUID `json:"room_type_id"`
	RoomTypeName string    `json:"room_type_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationFilters struct {
	Status *string
}
