//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	repositorymock "travel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const createBookingEndpoint = "POST /api/bookings"

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	userID := uuid.New()
	expiresAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expected      bool
		expectedError bool
	}{
		{name: "success: key newly claimed", affected: 1, expected: true},
		{name: "success: key already exists", affected: 0, expected: false},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, userID, arg.UserID)
					assert.Equal(t, createBookingEndpoint, arg.Endpoint)
					assert.Equal(t, "hash", arg.RequestHash)
					assert.Equal(t, expiresAt, arg.ExpiresAt.Time)
					return tc.affected, tc.queryErr
				})

			inserted, err := repo.TryInsert(ctx, mockDB, key, userID, createBookingEndpoint, "hash", expiresAt)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, inserted)
		})
	}
}

func TestIdempotencyRepository_ClaimExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error) {
			assert.Equal(t, now, arg.Now.Time)
			assert.Equal(t, now.Add(24*time.Hour), arg.ExpiresAt.Time)
			return 0, nil
		})

	claimed, err := repo.ClaimExpired(ctx, mockDB, uuid.New(), uuid.New(), createBookingEndpoint, "hash", now.Add(24*time.Hour), now)
	require.NoError(t, err)
	assert.False(t, claimed, "a key another request reclaimed first must not be claimed twice")
}

func TestIdempotencyRepository_UpdateStatusCompleted(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: key completed", affected: 1},
		{name: "error: key not in processing state", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateIdempotencyKeyCompleted(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) (int64, error) {
					assert.Equal(t, bookingID, uuid.UUID(arg.ResultBookingID.Bytes))
					assert.Equal(t, "response-hash", arg.ResponseBodyHash.String)
					return tc.affected, tc.queryErr
				})

			err := repo.UpdateStatusCompleted(ctx, mockDB, uuid.New(), uuid.New(), "response-hash", bookingID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("success: falls back to the pool when no transaction is given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, mockDB, gomock.Any()).Return(int64(3), nil)

		count, err := repo.DeleteExpired(ctx, nil, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("database connection error"))

		count, err := repo.DeleteExpired(ctx, mockDB, now)
		require.Error(t, err)
		assert.Zero(t, count)
	})
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: job queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		expected := sqlc.CreateNotificationJobParams{
			Kind:    "email",
			Topic:   "booking_created",
			Payload: []byte(`{"bookingId":"x"}`),
			RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
			Status:  "queued",
		}
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, expected).Return(nil)

		err := repo.CreateJob(ctx, mockDB, "email", "booking_created", []byte(`{"bookingId":"x"}`), runAt)
		require.NoError(t, err)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		err := repo.CreateJob(ctx, mockDB, "email", "booking_created", nil, runAt)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
