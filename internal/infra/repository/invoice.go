package repository

import (
	"context"

	"hotel-reservation/internal/domain/invoice"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InvoiceWriteQueries interface {
	CreateInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInvoiceParams) error
	GetInvoiceByReservationForUpdate(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (sqlc.Invoices, error)
	UpdateInvoicePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInvoicePaymentParams) error
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error {
	if err := r.queries.CreateInvoice(ctx, tx, converter.InvoiceToInfra(inv)); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("reservation already has an invoice", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) LockByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (*invoice.Invoice, error) {
	row, err := r.queries.GetInvoiceByReservationForUpdate(ctx, tx, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load invoice", err)
	}
	return converter.InvoiceFromInfra(row), nil
}

func (r *InvoiceRepository) UpdatePayment(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error {
	err := r.queries.UpdateInvoicePayment(ctx, tx, sqlc.UpdateInvoicePaymentParams{
		ID:         inv.ID(),
		AmountPaid: inv.AmountPaid().Minor(),
		Status:     inv.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice payment", err)
	}
	return nil
}
