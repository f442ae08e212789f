package queries

import (
	"context"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastBookingDate time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	// GetByID returns the booking if actor owns it or is staff.
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the access check; used for read-after-write and idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor.UserID && !actor.Role.IsStaff() {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		rows []*BookingListItem
		err  error
	)
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, fetch)
	} else {
		lastBookingDate, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastBookingDate, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.BookingDate, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
