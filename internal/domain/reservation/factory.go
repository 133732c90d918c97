package reservation

import (
	"hotel-reservation/internal/domain/roomtype"
	"hotel-reservation/internal/domain/stay"

	"github.com/google/uuid"
)

// Factory quotes the stay and builds a PENDING reservation with the total snapshotted.
type Factory struct {
	PriceCalculator PriceCalculator
}

func NewFactory(priceCalculator PriceCalculator) *Factory {
	return &Factory{PriceCalculator: priceCalculator}
}

func (f *Factory) CreateReservation(
	rt *roomtype.RoomType,
	guestID, createdBy uuid.UUID,
	period stay.Period,
	note Note,
) (*Reservation, Quote, error) {
	if rt == nil {
		return nil, Quote{}, ErrRoomTypeRequired
	}
	quote := f.PriceCalculator.Quote(rt.Rates(), period)
	res, err := NewReservation(guestID, rt.ID(), createdBy, period, quote.Total, note)
	if err != nil {
		return nil, Quote{}, err
	}
	return res, quote, nil
}
