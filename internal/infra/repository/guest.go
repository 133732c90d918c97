package repository

import (
	"context"

	"hotel-reservation/internal/domain/guest"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GuestWriteQueries interface {
	FindGuestByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Guests, error)
	CreateGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGuestParams) (uuid.UUID, error)
}

type GuestRepository struct {
	queries GuestWriteQueries
	db      sqlc.DBTX
}

func NewGuestRepository(queries GuestWriteQueries, db sqlc.DBTX) *GuestRepository {
	return &GuestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GuestRepository) FindByEmail(ctx context.Context, tx sqlc.DBTX, email user.Email) (*guest.Guest, error) {
	row, err := r.queries.FindGuestByEmail(ctx, tx, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by email", err)
	}

	g, err := converter.GuestFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map guest", err)
	}
	return g, nil
}

func (r *GuestRepository) Create(ctx context.Context, tx sqlc.DBTX, g *guest.Guest) (uuid.UUID, error) {
	id, err := r.queries.CreateGuest(ctx, tx, converter.GuestToInfra(g))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("guest email already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create guest", err)
	}
	return id, nil
}
