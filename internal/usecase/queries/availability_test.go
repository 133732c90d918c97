//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/stay"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"
	"hotel-reservation/tests/common/builder"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// readOnlyUoW runs read callbacks without a database.
type readOnlyUoW struct{}

func (readOnlyUoW) Within(context.Context, func(context.Context, shared.Tx) error) error {
	return errors.New("writes are not expected here")
}

func (readOnlyUoW) WithinReadOnly(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (readOnlyUoW) WithDB(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (readOnlyUoW) CommandReads() shared.CommandReads { return nil }

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	store      *queriesmock.MockCatalogReadStore
	sut        queries.AvailabilityQueries
	oceanSuite *queries.RoomTypeView
	single     *queries.RoomTypeView
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockCatalogReadStore(s.ctrl)
	s.sut = queries.NewAvailabilityQueries(
		readOnlyUoW{},
		s.store,
		availability.NewCalculator(),
		reservation.NewPerNightPriceCalculator(1000, []time.Weekday{time.Friday, time.Saturday}),
		inventory.CountAllRooms,
		"LKR",
	)
	s.oceanSuite = builder.NewRoomTypeBuilder().BuildView()
	s.single = builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
		b.Name = "Garden Single"
		b.Capacity = 1
		b.WeekdayPrice = 500_000
		b.WeekendPrice = 500_000
	}).BuildView()
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAvailabilityQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) expectSnapshot(occupied stay.Period) {
	s.store.EXPECT().ListRoomTypes(gomock.Any(), gomock.Any()).Return([]*queries.RoomTypeView{s.oceanSuite, s.single}, nil)
	s.store.EXPECT().ListInventory(gomock.Any(), gomock.Any()).Return([]inventory.RoomRef{
		{RoomTypeID: s.oceanSuite.ID, Status: room.StatusClean},
		{RoomTypeID: s.oceanSuite.ID, Status: room.StatusDirty},
		{RoomTypeID: s.single.ID, Status: room.StatusClean},
	}, nil)
	s.store.EXPECT().ListOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return([]availability.Occupancy{
		{RoomTypeID: s.single.ID, Period: occupied, Status: reservation.StatusConfirmed},
		{RoomTypeID: s.oceanSuite.ID, Period: occupied, Status: reservation.StatusCancelled},
	}, nil)
}

func (s *AvailabilityQueriesTestSuite) TestSearch() {
	ctx := context.Background()
	period, err := stay.ParsePeriod("2025-06-05", "2025-06-08")
	s.Require().NoError(err)

	s.Run("lists sold-out types alongside open ones", func() {
		s.expectSnapshot(period)

		views, err := s.sut.Search(ctx, queries.AvailabilityFilter{CheckIn: "2025-06-05", CheckOut: "2025-06-08"})
		s.Require().NoError(err)
		s.Require().Len(views, 2)

		s.Equal(s.oceanSuite.ID, views[0].RoomType.ID)
		s.Equal(2, views[0].RoomsLeft)
		s.False(views[0].IsSoldOut)
		s.Equal(3, views[0].Nights)
		s.Equal(int64(3_400_000), views[0].Subtotal)
		s.Equal(int64(3_740_000), views[0].Total)
		s.Equal("LKR", views[0].Currency)

		s.True(views[1].IsSoldOut)
		s.Zero(views[1].RoomsLeft)
	})

	s.Run("available only hides sold-out types", func() {
		s.expectSnapshot(period)

		views, err := s.sut.Search(ctx, queries.AvailabilityFilter{CheckIn: "2025-06-05", CheckOut: "2025-06-08", AvailableOnly: true})
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(s.oceanSuite.ID, views[0].RoomType.ID)
	})

	s.Run("guest count filters by capacity", func() {
		s.expectSnapshot(period)

		views, err := s.sut.Search(ctx, queries.AvailabilityFilter{CheckIn: "2025-06-05", CheckOut: "2025-06-08", Guests: 2})
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal("Ocean Suite", views[0].RoomType.Name)
	})

	s.Run("invalid range", func() {
		_, err := s.sut.Search(ctx, queries.AvailabilityFilter{CheckIn: "2025-06-08", CheckOut: "2025-06-08"})
		s.True(errs.Is(err, errs.ErrInvalidDateRange))
	})

	s.Run("store failure", func() {
		s.store.EXPECT().ListRoomTypes(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
		_, err := s.sut.Search(ctx, queries.AvailabilityFilter{CheckIn: "2025-06-05", CheckOut: "2025-06-08"})
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	s.Run("unknown room type id in occupancy is ignored", func() {
		s.store.EXPECT().ListRoomTypes(gomock.Any(), gomock.Any()).Return([]*queries.RoomTypeView{s.oceanSuite}, nil)
		s.store.EXPECT().ListInventory(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.store.EXPECT().ListOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return([]availability.Occupancy{
			{RoomTypeID: uuid.New(), Period: period, Status: reservation.StatusConfirmed},
		}, nil)

		views, err := s.sut.Search(ctx, queries.AvailabilityFilter{CheckIn: "2025-06-05", CheckOut: "2025-06-08"})
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.True(views[0].IsSoldOut, "a type without rooms is never bookable")
	})
}
