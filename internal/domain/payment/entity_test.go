//go:build unit

package payment_test

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRef(t *testing.T) {
	id := uuid.New()
	ref := payment.NewOrderRef(id)
	assert.Equal(t, "BK-"+id.String(), ref.String())

	got, err := ref.ReservationID()
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = payment.OrderRef("ORD-" + id.String()).ReservationID()
	assert.True(t, errs.Is(err, errs.ErrUnknownOrder))

	_, err = payment.OrderRef("BK-not-a-uuid").ReservationID()
	assert.ErrorIs(t, err, payment.ErrUnknownOrder)
}

func TestParseStatusCode(t *testing.T) {
	tests := []struct {
		in      string
		want    payment.StatusCode
		wantErr bool
	}{
		{in: "2", want: payment.StatusSuccess},
		{in: "0", want: payment.StatusPending},
		{in: "-1", want: payment.StatusCancelled},
		{in: "-2", want: payment.StatusFailed},
		{in: " -3 ", want: payment.StatusChargedBack},
		{in: "1", wantErr: true},
		{in: "ok", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := payment.ParseStatusCode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, payment.ErrInvalidStatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == payment.StatusSuccess, got.IsSuccess())
		})
	}
}

func TestNewPayments(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	invoiceID := uuid.New()

	t.Run("gateway payment", func(t *testing.T) {
		ref := payment.NewOrderRef(uuid.New())
		p, err := payment.NewGatewayPayment(invoiceID, money.FromMinor(500), ref, "320025071278", now)
		require.NoError(t, err)
		assert.Equal(t, payment.MethodPayHere, p.Method())
		require.NotNil(t, p.OrderRef())
		assert.Equal(t, ref, *p.OrderRef())
		assert.True(t, p.StatusCode().IsSuccess())
	})

	t.Run("desk payment", func(t *testing.T) {
		p, err := payment.NewDeskPayment(invoiceID, money.FromMinor(500), payment.MethodCash, now)
		require.NoError(t, err)
		assert.Nil(t, p.OrderRef())
		assert.Equal(t, now, p.PaidAt())
	})

	t.Run("desk payment cannot claim the gateway", func(t *testing.T) {
		_, err := payment.NewDeskPayment(invoiceID, money.FromMinor(500), payment.MethodPayHere, now)
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := payment.NewDeskPayment(invoiceID, money.Zero(), payment.MethodCard, now)
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
		_, err = payment.NewGatewayPayment(invoiceID, money.Zero(), payment.NewOrderRef(uuid.New()), "x", now)
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("method parsing", func(t *testing.T) {
		m, err := payment.ParseMethod("card")
		require.NoError(t, err)
		assert.Equal(t, payment.MethodCard, m)
		_, err = payment.ParseMethod("cheque")
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})
}
