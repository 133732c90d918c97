package queries

import (
	"context"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomTypeNotFound = errs.Mark(errs.New("room type not found"), errs.ErrNotFound)

type CatalogQueries interface {
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	ListRooms(ctx context.Context, status *string) ([]*RoomView, error)
}

type catalogQueriesImpl struct {
	uow   shared.UnitOfWork
	store CatalogReadStore
}

func NewCatalogQueries(uow shared.UnitOfWork, store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{uow: uow, store: store}
}

func (q *catalogQueriesImpl) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	var view *RoomTypeView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.store.RoomTypeByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	var views []*RoomTypeView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.store.ListRoomTypes(ctx, db)
		return err
	})
	return views, err
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context, status *string) ([]*RoomView, error) {
	var views []*RoomView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.store.ListRooms(ctx, db, status)
		return err
	})
	return views, err
}
