//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/roomtype"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomTypeBuilder struct {
	ID           uuid.UUID
	Name         string
	WeekdayPrice int64
	WeekendPrice int64
	Capacity     int
	Amenities    []string
}

// NewRoomTypeBuilder defaults to an LKR 10,000 weekday / 12,000 weekend suite.
func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{
		ID:           uuid.New(),
		Name:         "Ocean Suite",
		WeekdayPrice: 1_000_000,
		WeekendPrice: 1_200_000,
		Capacity:     2,
		Amenities:    []string{"wifi", "sea view"},
	}
}

func (b *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(b)
	return b
}

func (b *RoomTypeBuilder) BuildDomain() *roomtype.RoomType {
	rates, err := roomtype.NewRates(b.WeekdayPrice, b.WeekendPrice)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return roomtype.Reconstruct(b.ID, b.Name, rates, b.Capacity, b.Amenities, "", now, now)
}

func (b *RoomTypeBuilder) BuildView() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:           b.ID,
		Name:         b.Name,
		WeekdayPrice: b.WeekdayPrice,
		WeekendPrice: b.WeekendPrice,
		Capacity:     int32(b.Capacity), // #nosec G115
		Amenities:    b.Amenities,
	}
}

func (b *RoomTypeBuilder) BuildCreateRequest() reqdto.CreateRoomTypeRequest {
	return reqdto.CreateRoomTypeRequest{
		Name:         b.Name,
		WeekdayPrice: b.WeekdayPrice,
		WeekendPrice: b.WeekendPrice,
		Capacity:     b.Capacity,
		Amenities:    b.Amenities,
	}
}
