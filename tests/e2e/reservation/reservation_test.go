//go:build e2e

package reservation_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/infra/gateway"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/infra/uow"
	"hotel-reservation/internal/usecase/shared"
	"hotel-reservation/tests/common/authtest"
	"hotel-reservation/tests/common/dbtest"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/availability"
	checkoutURL     = "/api/payments/checkout"
	notifyURL       = "/api/payments/notify"

	// 2 nights at 100.00 plus 10% tax
	stayTotal       = int64(22_000)
	stayTotalAmount = "220.00"
)

type reservationSuite struct {
	e2e.SharedSuite
	payhere *gateway.PayHere

	roomTypeID uuid.UUID
	checkIn    string
	checkOut   string
	adaToken   string
	staffToken string
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.payhere = gateway.NewPayHere(s.Config.PayHere)

	start := time.Now().AddDate(0, 1, 0)
	s.checkIn = start.Format(time.DateOnly)
	s.checkOut = start.AddDate(0, 0, 2).Format(time.DateOnly)
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.roomTypeID = dbtest.CreateRoomType(t, s.DB, "Garden Room", 10_000, 10_000, 2, 1)
	s.adaToken = authtest.CreateAndLogin(t, s.DB, s.Router, "ada@example.com", string(user.RoleGuest))
	s.staffToken = authtest.CreateAndLogin(t, s.DB, s.Router, "frontdesk@example.com", string(user.RoleStaff))
}

func (s *reservationSuite) book(token, email string, key uuid.UUID) (int, *response.ReservationResponse) {
	t := s.T()

	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
		RoomTypeID: s.roomTypeID,
		CheckIn:    s.checkIn,
		CheckOut:   s.checkOut,
		GuestName:  "Ada Lovelace",
		GuestEmail: email,
	}, map[string]string{
		"Authorization":   "Bearer " + token,
		"Idempotency-Key": key.String(),
	})

	var res response.ReservationResponse
	if w.Code == http.StatusCreated || w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, &res
}

func (s *reservationSuite) availability() *response.AvailabilityResponse {
	t := s.T()

	path := fmt.Sprintf("%s?check_in=%s&check_out=%s", availabilityURL, s.checkIn, s.checkOut)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res []*response.AvailabilityResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	for _, r := range res {
		if r.RoomType.ID == s.roomTypeID {
			return r
		}
	}
	require.FailNow(t, "room type missing from availability")
	return nil
}

func (s *reservationSuite) notify(orderID, amount, statusCode string) (int, *response.ReconciliationResponse) {
	t := s.T()

	n := shared.GatewayNotification{
		MerchantID: e2e.PayHereMerchantID,
		OrderID:    orderID,
		PaymentID:  "320025071278",
		Amount:     amount,
		Currency:   "LKR",
		StatusCode: statusCode,
	}
	form := url.Values{
		"merchant_id":      {n.MerchantID},
		"order_id":         {n.OrderID},
		"payment_id":       {n.PaymentID},
		"payhere_amount":   {n.Amount},
		"payhere_currency": {n.Currency},
		"status_code":      {n.StatusCode},
		"md5sig":           {s.payhere.Sign(n)},
		"method":           {"VISA"},
	}

	w := httptest.PerformFormRequest(t, s.Router, notifyURL, form)
	var res response.ReconciliationResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, &res
}

func (s *reservationSuite) TestBookingLifecycle() {
	s.Run("last room is sold once and freed on cancellation", func() {
		t := s.T()

		before := s.availability()
		require.Equal(t, 1, before.TotalRooms)
		require.Equal(t, 1, before.RoomsLeft)
		require.Equal(t, stayTotal, before.Total)

		key := uuid.New()
		status, created := s.book(s.adaToken, "ada@example.com", key)
		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, "PENDING", created.Status)
		require.Equal(t, stayTotal, created.TotalPrice)
		require.Equal(t, 2, created.Nights)
		require.NotNil(t, created.Invoice)
		require.Equal(t, "PENDING", created.Invoice.Status)

		status, replayed := s.book(s.adaToken, "ada@example.com", key)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, created.ID, replayed.ID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))

		graceToken := authtest.CreateAndLogin(t, s.DB, s.Router, "grace@example.com", string(user.RoleGuest))
		status, _ = s.book(graceToken, "grace@example.com", uuid.New())
		require.Equal(t, http.StatusConflict, status)
		require.True(t, s.availability().IsSoldOut)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/cancel", nil, s.adaToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 1, s.availability().RoomsLeft)

		status, _ = s.book(graceToken, "grace@example.com", uuid.New())
		require.Equal(t, http.StatusCreated, status)
	})

	s.Run("gateway payment confirms the booking", func() {
		t := s.T()

		_, created := s.book(s.adaToken, "ada@example.com", uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL,
			request.CheckoutRequest{ReservationID: created.ID}, s.adaToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var payload shared.CheckoutPayload
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &payload))
		require.Equal(t, stayTotalAmount, payload.Amount)
		require.Equal(t, e2e.PayHereMerchantID, payload.MerchantID)

		status, result := s.notify(payload.OrderID, payload.Amount, "2")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "APPLIED", result.Outcome)
		require.Equal(t, "CONFIRMED", result.ReservationStatus)
		require.Equal(t, "PAID", result.InvoiceStatus)

		status, result = s.notify(payload.OrderID, payload.Amount, "2")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ALREADY_APPLIED", result.Outcome)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil, s.adaToken)
		require.Equal(t, http.StatusOK, w.Code)
		var view response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.Equal(t, "CONFIRMED", view.Status)
		require.Equal(t, stayTotal, view.Invoice.AmountPaid)
	})

	s.Run("tampered notification is rejected", func() {
		t := s.T()

		_, created := s.book(s.adaToken, "ada@example.com", uuid.New())

		form := url.Values{
			"merchant_id":      {e2e.PayHereMerchantID},
			"order_id":         {"BK-" + created.ID.String()},
			"payhere_amount":   {stayTotalAmount},
			"payhere_currency": {"LKR"},
			"status_code":      {"2"},
			"md5sig":           {"00000000000000000000000000000000"},
		}
		w := httptest.PerformFormRequest(t, s.Router, notifyURL, form)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "payments"))
	})

	s.Run("desk payment then staff confirmation", func() {
		t := s.T()

		_, created := s.book(s.staffToken, "walkin@example.com", uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/desk-payment",
			request.DeskPaymentRequest{Amount: 5_000, Method: "CASH"}, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var paid response.DeskPaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &paid))
		require.Equal(t, "CONFIRMED", paid.ReservationStatus)
		require.Equal(t, "PARTIAL", paid.InvoiceStatus)
		require.Equal(t, stayTotal-5_000, paid.Outstanding)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/desk-payment",
			request.DeskPaymentRequest{Amount: 5_000, Method: "CASH"}, s.adaToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("guests only see their own bookings", func() {
		t := s.T()

		_, mine := s.book(s.adaToken, "ada@example.com", uuid.New())
		graceToken := authtest.CreateAndLogin(t, s.DB, s.Router, "grace@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+mine.ID.String(), nil, graceToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, graceToken)
		require.Equal(t, http.StatusOK, w.Code)
		var page response.ReservationPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Empty(t, page.Items)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.staffToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 1)
	})
}

func (s *reservationSuite) TestValidation() {
	s.Run("missing idempotency key", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			RoomTypeID: s.roomTypeID,
			CheckIn:    s.checkIn,
			CheckOut:   s.checkOut,
			GuestName:  "Ada Lovelace",
			GuestEmail: "ada@example.com",
		}, s.adaToken)
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("check-out before check-in", func() {
		t := s.T()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			RoomTypeID: s.roomTypeID,
			CheckIn:    s.checkOut,
			CheckOut:   s.checkIn,
			GuestName:  "Ada Lovelace",
			GuestEmail: "ada@example.com",
		}, map[string]string{
			"Authorization":   "Bearer " + s.adaToken,
			"Idempotency-Key": uuid.NewString(),
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("unknown room type", func() {
		t := s.T()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			RoomTypeID: uuid.New(),
			CheckIn:    s.checkIn,
			CheckOut:   s.checkOut,
			GuestName:  "Ada Lovelace",
			GuestEmail: "ada@example.com",
		}, map[string]string{
			"Authorization":   "Bearer " + s.adaToken,
			"Idempotency-Key": uuid.NewString(),
		})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *reservationSuite) TestReadOnlySnapshot() {
	s.Run("inventory reads stay on one snapshot", func() {
		t := s.T()
		ctx := context.Background()
		u := uow.NewPostgresUoW(s.DB, sqlc.New())

		var isolation string
		var before, after int
		err := u.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
			if err := db.QueryRow(ctx, "SHOW transaction_isolation").Scan(&isolation); err != nil {
				return err
			}
			if err := db.QueryRow(ctx, "SELECT count(*) FROM rooms").Scan(&before); err != nil {
				return err
			}
			dbtest.CreateRoomType(t, s.DB, "Ocean Suite", 20_000, 24_000, 2, 2)
			return db.QueryRow(ctx, "SELECT count(*) FROM rooms").Scan(&after)
		})
		require.NoError(t, err)
		require.Equal(t, "repeatable read", isolation)
		require.Equal(t, before, after, "rooms added mid-transaction must not be visible")
		require.Equal(t, before+2, dbtest.CountRows(t, s.DB, "rooms"))
	})
}
