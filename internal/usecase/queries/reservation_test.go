//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockReservationReadStore
	sut   queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockReservationReadStore(s.ctrl)
	s.sut = queries.NewReservationQueries(s.store)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	owner := builder.NewUserBuilder().AsGuest().BuildActor()
	view := builder.NewReservationBuilder().OwnedBy(owner.UserID).BuildView()

	s.Run("owner sees own booking", func() {
		s.store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		got, err := s.sut.GetByID(ctx, owner, view.ID)
		s.Require().NoError(err)
		s.Equal(view.ID, got.ID)
	})

	s.Run("staff sees every booking", func() {
		s.store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		got, err := s.sut.GetByID(ctx, builder.NewUserBuilder().WithRole("staff").BuildActor(), view.ID)
		s.Require().NoError(err)
		s.Equal(view.ID, got.ID)
	})

	s.Run("another guest is forbidden", func() {
		s.store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		_, err := s.sut.GetByID(ctx, builder.NewUserBuilder().AsGuest().BuildActor(), view.ID)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("housekeeper is forbidden", func() {
		s.store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		_, err := s.sut.GetByID(ctx, builder.NewUserBuilder().WithRole("housekeeper").BuildActor(), view.ID)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))
		_, err := s.sut.GetByID(ctx, owner, id)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *ReservationQueriesTestSuite) TestList() {
	ctx := context.Background()
	guest := builder.NewUserBuilder().AsGuest().BuildActor()
	staff := builder.NewUserBuilder().WithRole("staff").BuildActor()

	items := make([]*queries.ReservationListItem, 0, 3)
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		b := builder.NewReservationBuilder()
		b.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
		items = append(items, b.BuildListItem())
	}

	s.Run("guest listing is scoped to the guest", func() {
		s.store.EXPECT().
			FindFirstPage(ctx, &guest.UserID, nil, int32(3)).
			Return(items[:2], nil)

		page, next, err := s.sut.List(ctx, guest, queries.ReservationFilters{}, nil, 2)
		s.Require().NoError(err)
		s.Len(page, 2)
		s.Nil(next)
	})

	s.Run("staff listing is unscoped and paginates", func() {
		s.store.EXPECT().
			FindFirstPage(ctx, nil, nil, int32(3)).
			Return(items, nil)

		page, next, err := s.sut.List(ctx, staff, queries.ReservationFilters{}, nil, 2)
		s.Require().NoError(err)
		s.Len(page, 2)
		s.Require().NotNil(next)

		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(items[1].ID, id)
		s.True(items[1].CreatedAt.Equal(createdAt))

		s.store.EXPECT().
			FindKeyset(ctx, nil, nil, gomock.Any(), items[1].ID, int32(3)).
			Return(items[2:], nil)

		page, next, err = s.sut.List(ctx, staff, queries.ReservationFilters{}, next, 2)
		s.Require().NoError(err)
		s.Len(page, 1)
		s.Nil(next)
	})

	s.Run("broken cursor", func() {
		_, _, err := s.sut.List(ctx, staff, queries.ReservationFilters{}, &queries.Cursor{After: "not-base64!"}, 2)
		s.True(errs.Is(err, queries.ErrInvalidCursor))
	})

	s.Run("housekeeper cannot list", func() {
		_, _, err := s.sut.List(ctx, builder.NewUserBuilder().WithRole("housekeeper").BuildActor(), queries.ReservationFilters{}, nil, 2)
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
