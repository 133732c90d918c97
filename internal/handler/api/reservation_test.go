//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-reservation/internal/domain/invoice"
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/handler/api"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/common/testutil"
	commandsmock "hotel-reservation/tests/mock/commands"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockPayments *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockReservationQueries
	actor        shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.actor = builder.NewUserBuilder().WithRole("staff").BuildActor()

	h := api.NewReservationHandler(s.mockCommands, s.mockPayments, s.mockQueries)
	g := s.router.Group("/reservations", func(c *gin.Context) {
		middleware.SetActor(c, s.actor)
	})
	g.POST("", h.CreateReservation)
	g.GET("", h.ListReservations)
	g.GET("/:id", h.GetReservation)
	g.POST("/:id/confirm", h.Confirm)
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/check-in", h.CheckIn)
	g.POST("/:id/check-out", h.CheckOut)
	g.POST("/:id/desk-payment", h.RecordDeskPayment)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequest()
	key := uuid.New()
	headers := map[string]string{"Idempotency-Key": key.String()}

	s.Run("success: 201 Created with the booked reservation", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actor, b.BuildCreateInput(), key).
			Return(&commands.CreateReservationResult{Reservation: b.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(b.ID, response.ID)
		s.Equal("2025-06-01", response.CheckInDate)
		s.Equal("2025-06-04", response.CheckOutDate)
		s.Equal(3, response.Nights)
		s.Equal("PENDING", response.Status)
	})

	s.Run("success: 200 OK when the key is replayed", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actor, gomock.Any(), key).
			Return(&commands.CreateReservationResult{Reservation: b.BuildView(), IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when Idempotency-Key is missing or malformed", func() {
		for name, h := range map[string]map[string]string{
			"missing":   {},
			"malformed": {"Idempotency-Key": "not-a-uuid"},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, h)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room_type_id", mutate: testutil.Field("room_type_id", nil)},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil)},
			{name: "invalid guest_email", mutate: testutil.Field("guest_email", "nope")},
			{name: "empty guest_name", mutate: testutil.Field("guest_name", "")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, headers)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps command errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{"sold out", errs.ErrSoldOut, http.StatusConflict, "sold out"},
			{"invalid dates", errs.Wrap(errs.ErrInvalidDateRange, "parse period"), http.StatusBadRequest, "Check-out must be after check-in"},
			{"guest directory failed", errs.Mark(errors.New("pg down"), errs.ErrDependencyFailed), http.StatusFailedDependency, "A required service failed"},
			{"room type not found", commands.ErrRoomTypeNotFound, http.StatusNotFound, "Not found"},
			{"in progress", errs.ErrIdempotencyInProgress, http.StatusConflict, "being processed"},
			{"key reused", errs.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "different request"},
			{"forbidden", errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers)
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	b := builder.NewReservationBuilder()
	url := "/reservations/" + b.ID.String()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Ocean Suite", response.RoomTypeName)
	})

	s.Run("error: 403 when reading someone else's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, b.ID).Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, b.ID).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/xyz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().BuildListItem(),
		builder.NewReservationBuilder().BuildListItem(),
	}

	s.Run("success: forwards filters and returns the next cursor", func() {
		status := "CONFIRMED"
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.actor, queries.ReservationFilters{Status: &status}, &queries.Cursor{After: "abc"}, 2).
			Return(items, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=CONFIRMED&cursor=abc&limit=2", nil, "")
		var response resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("next", response.NextCursor)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=LOST", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=zzz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *ReservationHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("success: each endpoint reports the new status", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.actor, id).
			Return(&commands.TransitionResult{ReservationID: id, Status: reservation.StatusConfirmed}, nil)
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), s.actor, id).
			Return(&commands.TransitionResult{ReservationID: id, Status: reservation.StatusCheckedIn}, nil)
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), s.actor, id).
			Return(&commands.TransitionResult{ReservationID: id, Status: reservation.StatusCheckedOut}, nil)
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, id).
			Return(&commands.TransitionResult{ReservationID: id, Status: reservation.StatusCancelled}, nil)

		for path, want := range map[string]string{
			"/confirm":   "CONFIRMED",
			"/check-in":  "CHECKED_IN",
			"/check-out": "CHECKED_OUT",
			"/cancel":    "CANCELLED",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+path, nil, "")
			var response resdto.TransitionResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(want, response.Status, path)
			s.Equal(id, response.ReservationID)
		}
	})

	s.Run("error: 409 on an invalid transition", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), s.actor, id).
			Return(nil, errs.Wrap(errs.ErrInvalidTransition, "PENDING -> CHECKED_OUT")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot move")
	})

	s.Run("error: 409 on a concurrent update", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, id).
			Return(nil, errs.ErrConcurrentModification).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "modified concurrently")
	})
}

func (s *ReservationHandlerTestSuite) TestRecordDeskPayment() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/desk-payment"

	s.Run("success: returns invoice totals", func() {
		s.mockPayments.EXPECT().
			RecordDeskPayment(gomock.Any(), s.actor, id, commands.DeskPaymentInput{Amount: 500_000, Method: "CASH"}).
			Return(&commands.DeskPaymentResult{
				ReservationID:     id,
				ReservationStatus: reservation.StatusPending,
				InvoiceStatus:     invoice.StatusPartial,
				AmountPaid:        money.FromMinor(500_000),
				Outstanding:       money.FromMinor(2_800_000),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 500_000, "method": "CASH"}, "")
		var response resdto.DeskPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("PARTIAL", response.InvoiceStatus)
		s.Equal(int64(2_800_000), response.Outstanding)
	})

	s.Run("error: 400 on unsupported method", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 1, "method": "CHEQUE"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 on a cancelled reservation", func() {
		s.mockPayments.EXPECT().RecordDeskPayment(gomock.Any(), s.actor, id, gomock.Any()).
			Return(nil, errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 1, "method": "CARD"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
