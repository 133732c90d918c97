package converter

import (
	"hotel-reservation/internal/domain/invoice"
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/payment"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func InvoiceToInfra(inv *invoice.Invoice) sqlc.CreateInvoiceParams {
	return sqlc.CreateInvoiceParams{
		ID:            inv.ID(),
		ReservationID: inv.ReservationID(),
		Amount:        inv.Amount().Minor(),
		AmountPaid:    inv.AmountPaid().Minor(),
		Currency:      inv.Currency(),
		DueDate:       pgconv.DateToPgtype(inv.DueDate()),
		Status:        inv.Status().String(),
	}
}

func InvoiceFromInfra(row sqlc.Invoices) *invoice.Invoice {
	return invoice.Reconstruct(
		row.ID,
		row.ReservationID,
		money.FromMinor(row.Amount),
		money.FromMinor(row.AmountPaid),
		row.Currency,
		pgconv.DateFromPgtype(row.DueDate),
		invoice.Status(row.Status),
	)
}

func PaymentToInfra(p *payment.Payment) sqlc.CreatePaymentParams {
	params := sqlc.CreatePaymentParams{
		ID:            p.ID(),
		InvoiceID:     p.InvoiceID(),
		Amount:        p.Amount().Minor(),
		Method:        string(p.Method()),
		TransactionID: pgconv.OptionalText(p.TransactionID()),
		StatusCode:    int32(p.StatusCode()),
		PaidAt:        pgconv.TimeToPgtype(p.PaidAt()),
	}

	if ref := p.OrderRef(); ref != nil {
		params.OrderRef = pgtype.Text{String: ref.String(), Valid: true}
	} else {
		params.OrderRef = pgtype.Text{Valid: false}
	}

	return params
}
