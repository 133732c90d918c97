package queries

import (
	"context"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/roomtype"
	"hotel-reservation/internal/domain/stay"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	RoomTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*RoomTypeView, error)
	ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]*RoomTypeView, error)
	ListRooms(ctx context.Context, db sqlc.DBTX, status *string) ([]*RoomView, error)
	ListInventory(ctx context.Context, db sqlc.DBTX) ([]inventory.RoomRef, error)
	ListOverlapping(ctx context.Context, db sqlc.DBTX, period stay.Period) ([]availability.Occupancy, error)
}

type AvailabilityQueries interface {
	// Search quotes every room type for the stay. Sold-out types are kept
	// unless AvailableOnly is set, so the UI can show them as unavailable.
	Search(ctx context.Context, filter AvailabilityFilter) ([]*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow         shared.UnitOfWork
	store       CatalogReadStore
	calculator  *availability.Calculator
	pricing     reservation.PriceCalculator
	countPolicy inventory.CountPolicy
	currency    string
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	store CatalogReadStore,
	calculator *availability.Calculator,
	pricing reservation.PriceCalculator,
	countPolicy inventory.CountPolicy,
	currency string,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:         uow,
		store:       store,
		calculator:  calculator,
		pricing:     pricing,
		countPolicy: countPolicy,
		currency:    currency,
	}
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, filter AvailabilityFilter) ([]*AvailabilityView, error) {
	period, err := stay.ParsePeriod(filter.CheckIn, filter.CheckOut)
	if err != nil {
		return nil, err
	}

	var (
		roomTypes   []*RoomTypeView
		rooms       []inventory.RoomRef
		occupancies []availability.Occupancy
	)
	// One snapshot so inventory and occupancy agree with each other.
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if roomTypes, err = q.store.ListRoomTypes(ctx, db); err != nil {
			return err
		}
		if rooms, err = q.store.ListInventory(ctx, db); err != nil {
			return err
		}
		occupancies, err = q.store.ListOverlapping(ctx, db, period)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	idx := inventory.NewIndex(rooms, q.countPolicy)
	ids := make([]uuid.UUID, 0, len(roomTypes))
	byID := make(map[uuid.UUID]*RoomTypeView, len(roomTypes))
	for _, rt := range roomTypes {
		if filter.Guests > 0 && int(rt.Capacity) < filter.Guests {
			continue
		}
		ids = append(ids, rt.ID)
		byID[rt.ID] = rt
	}

	results := q.calculator.Summarize(idx, ids, period, occupancies)
	if filter.AvailableOnly {
		results = availability.Selectable(results)
	}

	views := make([]*AvailabilityView, 0, len(results))
	for _, res := range results {
		rt := byID[res.RoomTypeID]
		rates, err := roomtype.NewRates(rt.WeekdayPrice, rt.WeekendPrice)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		quote := q.pricing.Quote(rates, period)
		views = append(views, &AvailabilityView{
			RoomType:   *rt,
			TotalRooms: res.TotalRooms,
			RoomsLeft:  res.RoomsLeft,
			IsSoldOut:  res.IsSoldOut,
			Nights:     quote.Nights,
			Subtotal:   quote.Subtotal.Minor(),
			Tax:        quote.Tax.Minor(),
			Total:      quote.Total.Minor(),
			Currency:   q.currency,
		})
	}
	return views, nil
}
