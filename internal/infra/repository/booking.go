package repository

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository/converter"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	CreateBookingStatusEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingStatusEventParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params := converter.BookingToInfra(b)

	resultID, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return resultID, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) error {
	params := sqlc.UpdateBookingStatusParams{
		Status:         b.Status().String(),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:             b.ID(),
		ExpectedStatus: expected.String(),
	}

	affected, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found in expected status", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) RecordStatusEvent(ctx context.Context, tx sqlc.DBTX, ev shared.StatusEvent) error {
	params := sqlc.CreateBookingStatusEventParams{
		BookingID: ev.BookingID,
		ToStatus:  ev.To.String(),
		ActorID:   pgconv.UUIDPtrToPgtype(ev.ActorID),
		Reason:    ev.Reason,
		CreatedAt: pgconv.TimeToPgtype(ev.At),
	}
	if ev.From != nil {
		params.FromStatus = pgtype.Text{String: ev.From.String(), Valid: true}
	}

	if err := r.queries.CreateBookingStatusEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record booking status event", err)
	}

	return nil
}
