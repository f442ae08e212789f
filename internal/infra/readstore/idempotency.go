package readstore

import (
	"context"

	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns the record even when it has expired; callers decide whether to reclaim it.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          row.UserID,
		Endpoint:        row.Endpoint,
		Status:          row.Status,
		RequestHash:     row.RequestHash,
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
