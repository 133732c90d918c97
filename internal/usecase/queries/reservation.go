package queries

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/authz"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindFirstPage(ctx context.Context, ownerID *uuid.UUID, status *string, limit int32) ([]*ReservationListItem, error)
	FindKeyset(ctx context.Context, ownerID *uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, actor shared.Actor, filters ReservationFilters, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

// GetByID hides reservations the actor may not see behind ErrForbidden.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if actor.Can(authz.ViewBookings) {
		return view, nil
	}
	if actor.Can(authz.ViewOwnBookings) && ownsView(view, actor.UserID) {
		return view, nil
	}
	return nil, errs.ErrForbidden
}

// List returns every reservation for staff and only the actor's own for guests.
func (q *reservationQueriesImpl) List(ctx context.Context, actor shared.Actor, filters ReservationFilters, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	var owner *uuid.UUID
	switch {
	case actor.Can(authz.ViewBookings):
	case actor.Can(authz.ViewOwnBookings):
		id := actor.UserID
		owner = &id
	default:
		return nil, nil, errs.ErrForbidden
	}

	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, owner, filters.Status, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, owner, filters.Status, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	page, next := paginate(rows, limit, func(item *ReservationListItem) (time.Time, uuid.UUID) {
		return item.CreatedAt, item.ID
	})
	return page, next, nil
}

func ownsView(view *ReservationView, actorID uuid.UUID) bool {
	if view.CreatedBy == actorID {
		return true
	}
	return view.GuestUserID != nil && *view.GuestUserID == actorID
}
