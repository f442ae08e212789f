//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadStore struct {
	mock.Mock
}

func (m *MockBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.BookingView)
	return view, args.Error(1)
}

func (m *MockBookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, userID, limit)
	items, _ := args.Get(0).([]*queries.BookingListItem)
	return items, args.Error(1)
}

func (m *MockBookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastBookingDate time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, userID, lastBookingDate, lastID, limit)
	items, _ := args.Get(0).([]*queries.BookingListItem)
	return items, args.Error(1)
}

func listItems(n int, newest time.Time) []*queries.BookingListItem {
	items := make([]*queries.BookingListItem, n)
	for i := range items {
		items[i] = &queries.BookingListItem{
			ID:          uuid.New(),
			BookingType: "hotel",
			BookingDate: newest.Add(-time.Duration(i) * time.Hour),
			Status:      "confirmed",
		}
	}
	return items
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	id := uuid.New()
	view := b.BuildView(id)

	tests := []struct {
		name    string
		actor   shared.Actor
		findErr error
		wantErr error
	}{
		{name: "所有者", actor: shared.Actor{UserID: b.UserID, Role: user.RoleCustomer}},
		{name: "オペレーターは全予約を参照できる", actor: shared.Actor{UserID: uuid.New(), Role: user.RoleOperator}},
		{name: "他の顧客は拒否", actor: shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}, wantErr: queries.ErrBookingAccess},
		{
			name:    "予約が存在しない",
			actor:   shared.Actor{UserID: b.UserID, Role: user.RoleCustomer},
			findErr: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound),
			wantErr: queries.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockBookingReadStore)
			if tt.findErr != nil {
				store.On("FindByID", mock.Anything, id).Return(nil, tt.findErr)
			} else {
				store.On("FindByID", mock.Anything, id).Return(view, nil)
			}

			actual, err := queries.NewBookingQueries(store).GetByID(ctx, tt.actor, id)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, actual)
		})
	}
}

func TestBookingQueries_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	newest := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("続きがある場合は最初のページに次カーソルが付く", func(t *testing.T) {
		store := new(MockBookingReadStore)
		rows := listItems(3, newest)
		store.On("FindByUserFirstPage", mock.Anything, userID, int32(3)).Return(rows, nil)

		items, next, err := queries.NewBookingQueries(store).ListByUser(ctx, userID, nil, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		lastDate, lastID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, lastID)
		assert.True(t, rows[1].BookingDate.Equal(lastDate))
	})

	t.Run("カーソル指定でキーセット検索を続ける", func(t *testing.T) {
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(newest, lastID)}

		store := new(MockBookingReadStore)
		store.On("FindByUserKeyset", mock.Anything, userID, newest, lastID, int32(queries.DefaultListLimit+1)).Return(listItems(1, newest.Add(-time.Hour)), nil)

		items, next, err := queries.NewBookingQueries(store).ListByUser(ctx, userID, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
		store.AssertExpectations(t)
	})

	t.Run("上限を超えるlimitは丸められる", func(t *testing.T) {
		store := new(MockBookingReadStore)
		store.On("FindByUserFirstPage", mock.Anything, userID, int32(queries.MaxListLimit+1)).Return([]*queries.BookingListItem{}, nil)

		items, next, err := queries.NewBookingQueries(store).ListByUser(ctx, userID, &queries.Cursor{}, 500)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Nil(t, next)
		store.AssertExpectations(t)
	})

	t.Run("不正なカーソル", func(t *testing.T) {
		store := new(MockBookingReadStore)

		_, _, err := queries.NewBookingQueries(store).ListByUser(ctx, userID, &queries.Cursor{After: "not-a-cursor"}, 10)
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
		store.AssertNotCalled(t, "FindByUserKeyset", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCursor(t *testing.T) {
	at := time.Date(2024, 1, 1, 9, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.Equal(t, at, gotTime)
	assert.Equal(t, id, gotID)

	for _, bad := range []string{"", "!!!", "djI6MTIzLWFiYw", "djE6YWJjLTEyMw"} {
		_, _, err := queries.DecodeAfterCursor(bad)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor, "cursor %q", bad)
	}
}
