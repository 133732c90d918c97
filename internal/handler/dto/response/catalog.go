package response

import (
	"time"

	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
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

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   string    `json:"room_number"`
	RoomTypeID   uuid.UUID `json:"room_type_id"`
	RoomTypeName string    `json:"room_type_name"`
	Floor        int32     `json:"floor"`
	Status       string    `json:"status"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AvailabilityResponse struct {
	RoomType   RoomTypeResponse `json:"room_type"`
	TotalRooms int              `json:"total_rooms"`
	RoomsLeft  int              `json:"rooms_left"`
	IsSoldOut  bool             `json:"is_sold_out"`
	Nights     int              `json:"nights"`
	Subtotal   int64            `json:"subtotal"`
	Tax        int64            `json:"tax"`
	Total      int64            `json:"total"`
	Currency   string           `json:"currency"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	var res RoomTypeResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromRoomTypeViews(vs []*queries.RoomTypeView) []*RoomTypeResponse {
	out := make([]*RoomTypeResponse, len(vs))
	for i, v := range vs {
		out[i] = FromRoomTypeView(v)
	}
	return out
}

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(vs))
	_ = copier.Copy(&out, vs)
	return out
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var res RoomResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromAvailabilityViews(vs []*queries.AvailabilityView) []*AvailabilityResponse {
	out := make([]*AvailabilityResponse, len(vs))
	for i, v := range vs {
		var res AvailabilityResponse
		_ = copier.Copy(&res, v)
		out[i] = &res
	}
	return out
}
