package response

import (
	"hotel-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReconciliationResponse struct {
	OrderID           string `json:"order_id"`
	Outcome           string `json:"outcome"`
	ReservationStatus string `json:"reservation_status"`
	InvoiceStatus     string `json:"invoice_status"`
	RefundRequired    bool   `json:"refund_required,omitempty"`
}

type DeskPaymentResponse struct {
	ReservationID     uuid.UUID `json:"reservation_id"`
	ReservationStatus string    `json:"reservation_status"`
	InvoiceStatus     string    `json:"invoice_status"`
	AmountPaid        int64     `json:"amount_paid"`
	Outstanding       int64     `json:"outstanding"`
}

func FromReconciliationResult(r *commands.ReconciliationResult) *ReconciliationResponse {
	return &ReconciliationResponse{
		OrderID:           r.OrderRef.String(),
		Outcome:           string(r.Outcome),
		ReservationStatus: r.ReservationStatus.String(),
		InvoiceStatus:     r.InvoiceStatus.String(),
		RefundRequired:    r.RefundRequired,
	}
}

func FromDeskPaymentResult(r *commands.DeskPaymentResult) *DeskPaymentResponse {
	return &DeskPaymentResponse{
		ReservationID:     r.ReservationID,
		ReservationStatus: r.ReservationStatus.String(),
		InvoiceStatus:     r.InvoiceStatus.String(),
		AmountPaid:        r.AmountPaid.Minor(),
		Outstanding:       r.Outstanding.Minor(),
	}
}
