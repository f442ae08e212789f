package readstore

import (
	"context"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{
		queries: queries,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	u, err := user.ReconstructUser(row.ID, row.Email, row.Role, row.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid user record", err)
	}
	return u, nil
}
