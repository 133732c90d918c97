package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomTypeID      uuid.UUID `json:"room_type_id" binding:"required"`
	CheckIn         string    `json:"check_in" binding:"required" example:"2025-06-01"`
	CheckOut        string    `json:"check_out" binding:"required" example:"2025-06-05"`
	GuestName       string    `json:"guest_name" binding:"required,max=200"`
	GuestEmail      string    `json:"guest_email" binding:"required,email"`
	GuestPhone      string    `json:"guest_phone" binding:"omitempty,max=40"`
	SpecialRequests *string   `json:"special_requests,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateReservationRequest) GetSpecialRequests() string {
	if r.SpecialRequests == nil {
		return ""
	}
	return strings.TrimSpace(*r.SpecialRequests)
}

type ListReservationsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED"`
	Cursor string  `form:"cursor"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

type AvailabilityQuery struct {
	CheckIn       string `form:"check_in" binding:"required"`
	CheckOut      string `form:"check_out" binding:"required"`
	Guests        int    `form:"guests" binding:"omitempty,min=1"`
	AvailableOnly bool   `form:"available_only"`
}
