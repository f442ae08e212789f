//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/promotion"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) ItemByID(ctx context.Context, itemType catalog.ItemType, id uuid.UUID) (*shared.ItemSnapshot, error) {
	args := m.Called(ctx, itemType, id)
	snap, _ := args.Get(0).(*shared.ItemSnapshot)
	return snap, args.Error(1)
}

func (m *MockCatalogReader) RoomOfHotel(ctx context.Context, roomID, hotelID uuid.UUID) (*shared.RoomSnapshot, error) {
	args := m.Called(ctx, roomID, hotelID)
	snap, _ := args.Get(0).(*shared.RoomSnapshot)
	return snap, args.Error(1)
}

type MockPromotionReader struct {
	mock.Mock
}

func (m *MockPromotionReader) ValidForType(ctx context.Context, promotionType promotion.Type, now time.Time) ([]*promotion.Promotion, error) {
	args := m.Called(ctx, promotionType, now)
	promos, _ := args.Get(0).([]*promotion.Promotion)
	return promos, args.Error(1)
}

var catalogNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newCatalogQueries() (queries.CatalogQueries, *MockCatalogReader, *MockPromotionReader) {
	reader := new(MockCatalogReader)
	promos := new(MockPromotionReader)
	return queries.NewCatalogQueries(reader, promos, clock.NewMockClock(catalogNow)), reader, promos
}

func TestCatalogQueries_GetItem(t *testing.T) {
	ctx := context.Background()

	t.Run("フライト詳細がマッピングされる", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsFlight(30000, time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC))
		q, reader, _ := newCatalogQueries()
		reader.On("ItemByID", mock.Anything, catalog.ItemTypeFlight, b.ItemID).Return(b.BuildSnapshot(), nil)

		view, err := q.GetItem(ctx, "flight", b.ItemID)
		require.NoError(t, err)
		assert.Equal(t, "flight", view.Type)
		assert.Equal(t, "JL123", view.Name)
		assert.Equal(t, int64(30000), view.PriceCents)
		assert.Equal(t, "JAL", view.Airline)
		require.NotNil(t, view.ArrivalTime)
		assert.True(t, view.ArrivalTime.Equal(b.ArrivalTime))
	})

	t.Run("未知のアイテム種別", func(t *testing.T) {
		q, reader, _ := newCatalogQueries()

		_, err := q.GetItem(ctx, "cruise", uuid.New())
		require.ErrorIs(t, err, queries.ErrInvalidItemType)
		reader.AssertNotCalled(t, "ItemByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("アイテムが存在しない", func(t *testing.T) {
		id := uuid.New()
		q, reader, _ := newCatalogQueries()
		reader.On("ItemByID", mock.Anything, catalog.ItemTypeHotel, id).
			Return(nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound))

		_, err := q.GetItem(ctx, "hotel", id)
		require.ErrorIs(t, err, queries.ErrItemNotFound)
	})

	t.Run("ストアのエラーはそのまま返す", func(t *testing.T) {
		id := uuid.New()
		q, reader, _ := newCatalogQueries()
		reader.On("ItemByID", mock.Anything, catalog.ItemTypeTour, id).
			Return(nil, infra.WrapRepoErr("failed to get tour", assert.AnError))

		_, err := q.GetItem(ctx, "tour", id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.NotErrorIs(t, err, queries.ErrItemNotFound)
	})
}

func TestCatalogQueries_GetRoom(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()

	t.Run("正常系", func(t *testing.T) {
		q, reader, _ := newCatalogQueries()
		reader.On("RoomOfHotel", mock.Anything, *b.RoomID, b.ItemID).Return(b.BuildRoomSnapshot(), nil)

		view, err := q.GetRoom(ctx, b.ItemID, *b.RoomID)
		require.NoError(t, err)
		assert.Equal(t, *b.RoomID, view.ID)
		assert.Equal(t, b.ItemID, view.HotelID)
		assert.Equal(t, "Deluxe Twin", view.Name)
		assert.Equal(t, int64(10000), view.PriceCents)
		assert.True(t, view.IsAvailable)
	})

	t.Run("他ホテルの客室", func(t *testing.T) {
		q, reader, _ := newCatalogQueries()
		otherHotel := uuid.New()
		reader.On("RoomOfHotel", mock.Anything, *b.RoomID, otherHotel).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := q.GetRoom(ctx, otherHotel, *b.RoomID)
		require.ErrorIs(t, err, queries.ErrItemNotFound)
	})
}

func TestCatalogQueries_ListApplicablePromotions(t *testing.T) {
	ctx := context.Background()

	t.Run("残り日数は時計から計算される", func(t *testing.T) {
		p, err := builder.NewPromotionBuilder().
			WithType("hotel").
			WithPeriod(catalogNow.AddDate(0, 0, -1), catalogNow.AddDate(0, 0, 10)).
			BuildDomain()
		require.NoError(t, err)

		q, _, promos := newCatalogQueries()
		promos.On("ValidForType", mock.Anything, promotion.TypeHotel, catalogNow).Return([]*promotion.Promotion{p}, nil)

		views, err := q.ListApplicablePromotions(ctx, "hotel")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, 10, views[0].RemainingDays)
		assert.Equal(t, "hotel", views[0].Type)
		require.NotNil(t, views[0].Code)
		assert.Equal(t, "SUMMER20", *views[0].Code)
	})

	t.Run("種別なしは汎用プロモを返す", func(t *testing.T) {
		q, _, promos := newCatalogQueries()
		promos.On("ValidForType", mock.Anything, promotion.TypeGeneral, catalogNow).Return([]*promotion.Promotion{}, nil)

		views, err := q.ListApplicablePromotions(ctx, "  ")
		require.NoError(t, err)
		assert.Empty(t, views)
		promos.AssertExpectations(t)
	})

	t.Run("未知の種別", func(t *testing.T) {
		q, _, promos := newCatalogQueries()

		_, err := q.ListApplicablePromotions(ctx, "spaceship")
		require.ErrorIs(t, err, queries.ErrInvalidItemType)
		promos.AssertNotCalled(t, "ValidForType", mock.Anything, mock.Anything, mock.Anything)
	})
}
