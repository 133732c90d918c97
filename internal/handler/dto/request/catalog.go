package request

import "github.com/google/uuid"

type CreateRoomTypeRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	WeekdayPrice int64    `json:"weekday_price" binding:"min=0,max=1000000000000"`
	WeekendPrice int64    `json:"weekend_price" binding:"min=0,max=1000000000000"`
	Capacity     int      `json:"capacity" binding:"required,min=1"`
	Amenities    []string `json:"amenities"`
	ImageURL     string   `json:"image_url" binding:"omitempty,url"`
}

// UpdateRoomTypeRatesRequest is a partial update; omitted fields keep their value.
type UpdateRoomTypeRatesRequest struct {
	WeekdayPrice *int64 `json:"weekday_price" binding:"omitempty,min=0,max=1000000000000"`
	WeekendPrice *int64 `json:"weekend_price" binding:"omitempty,min=0,max=1000000000000"`
}

type CreateRoomRequest struct {
	RoomNumber string    `json:"room_number" binding:"required,max=20"`
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	Floor      int       `json:"floor" binding:"min=0"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CLEAN DIRTY MAINTENANCE IN_PROGRESS"`
}

type ListRoomsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=CLEAN DIRTY MAINTENANCE IN_PROGRESS"`
}
