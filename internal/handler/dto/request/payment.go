package request

import (
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
}

type DeskPaymentRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1"`
	Method string `json:"method" binding:"required,oneof=CASH CARD"`
}

// PaymentNotifyRequest is the gateway callback. PayHere posts it as a form;
// JSON is accepted for sandbox tooling.
type PaymentNotifyRequest struct {
	MerchantID      string `form:"merchant_id" json:"merchant_id" binding:"required"`
	OrderID         string `form:"order_id" json:"order_id" binding:"required"`
	PaymentID       string `form:"payment_id" json:"payment_id"`
	PayhereAmount   string `form:"payhere_amount" json:"payhere_amount" binding:"required"`
	PayhereCurrency string `form:"payhere_currency" json:"payhere_currency" binding:"required"`
	StatusCode      string `form:"status_code" json:"status_code" binding:"required"`
	MD5Sig          string `form:"md5sig" json:"md5sig"`
	Method          string `form:"method" json:"method"`
}

func (r PaymentNotifyRequest) ToNotification() shared.GatewayNotification {
	return shared.GatewayNotification{
		MerchantID: r.MerchantID,
		OrderID:    r.OrderID,
		PaymentID:  r.PaymentID,
		Amount:     r.PayhereAmount,
		Currency:   r.PayhereCurrency,
		StatusCode: r.StatusCode,
		Signature:  r.MD5Sig,
		Method:     r.Method,
	}
}
