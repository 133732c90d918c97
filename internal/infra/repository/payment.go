package repository

import (
	"context"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	PaymentExistsByOrderRef(ctx context.Context, db sqlc.DBTX, orderRef pgtype.Text) (bool, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports KindDuplicateKey when the order reference was already recorded.
func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToInfra(p)); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("payment for order already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) ExistsByOrderRef(ctx context.Context, tx sqlc.DBTX, ref payment.OrderRef) (bool, error) {
	exists, err := r.queries.PaymentExistsByOrderRef(ctx, tx, pgconv.StringToPgtype(ref.String()))
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up payment by order ref", err)
	}
	return exists, nil
}
