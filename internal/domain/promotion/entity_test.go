//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/promotion"
	"travel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PromotionBuilder)
	errIs  error
}

func TestNewPromotion(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		p, err := builder.NewPromotionBuilder().BuildDomain()
		require.NoError(t, err)

		require.NotNil(t, p.Code())
		assert.Equal(t, "SUMMER20", p.Code().String())
		assert.Equal(t, promotion.TypeGeneral, p.Type())
		assert.Equal(t, 20, p.DiscountPercent())
		assert.True(t, p.IsActive())
	})

	t.Run("プロモコード検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "小文字は大文字に正規化OK",
				mutate: func(b *builder.PromotionBuilder) { b.WithCode(" summer20 ") },
			},
			{
				name:   "コード無しOK",
				mutate: func(b *builder.PromotionBuilder) { b.WithoutCode() },
			},
			{
				name:   "記号を含むNG",
				mutate: func(b *builder.PromotionBuilder) { b.WithCode("SUMMER 20!") },
				errIs:  promotion.ErrInvalidPromoCode,
			},
			{
				name:   "1文字NG",
				mutate: func(b *builder.PromotionBuilder) { b.WithCode("A") },
				errIs:  promotion.ErrInvalidPromoCode,
			},
		})
	})

	t.Run("割引検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "0%OK",
				mutate: func(b *builder.PromotionBuilder) { b.WithPercent(0) },
			},
			{
				name:   "100%OK",
				mutate: func(b *builder.PromotionBuilder) { b.WithPercent(100) },
			},
			{
				name:   "負の割合NG",
				mutate: func(b *builder.PromotionBuilder) { b.WithPercent(-1) },
				errIs:  promotion.ErrInvalidDiscountPercent,
			},
			{
				name:   "100%超NG",
				mutate: func(b *builder.PromotionBuilder) { b.WithPercent(101) },
				errIs:  promotion.ErrInvalidDiscountPercent,
			},
		})
	})

	t.Run("種別と期間の検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "hotel種別OK",
				mutate: func(b *builder.PromotionBuilder) { b.WithType("hotel") },
			},
			{
				name:   "未知の種別NG",
				mutate: func(b *builder.PromotionBuilder) { b.WithType("cruise") },
				errIs:  promotion.ErrInvalidPromotionType,
			},
			{
				name: "終了日が開始日より前NG",
				mutate: func(b *builder.PromotionBuilder) {
					b.WithPeriod(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
				},
				errIs: promotion.ErrInvalidPeriod,
			},
			{
				name:   "タイトル無しNG",
				mutate: func(b *builder.PromotionBuilder) { b.Title = "  " },
				errIs:  promotion.ErrMissingTitle,
			},
		})
	})
}

func TestValidateAt(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	p, err := builder.NewPromotionBuilder().WithPeriod(start, end).BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name  string
		at    time.Time
		errIs error
	}{
		{name: "開始時刻ちょうどは有効", at: start},
		{name: "終了時刻ちょうどは有効", at: end},
		{name: "期間中は有効", at: start.Add(72 * time.Hour)},
		{name: "開始前は未開始", at: start.Add(-time.Second), errIs: promotion.ErrPromotionNotYetValid},
		{name: "終了後は期限切れ", at: end.Add(time.Second), errIs: promotion.ErrPromotionExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidateAt(tt.at)
			if tt.errIs == nil {
				require.NoError(t, err)
				assert.True(t, p.IsValidAt(tt.at))
				return
			}
			require.ErrorIs(t, err, tt.errIs)
			assert.False(t, p.IsValidAt(tt.at))
		})
	}

	t.Run("非アクティブは期間内でも無効", func(t *testing.T) {
		inactive, err := builder.NewPromotionBuilder().WithPeriod(start, end).AsInactive().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, inactive.ValidateAt(start.Add(time.Hour)), promotion.ErrPromotionInactive)
	})
}

func TestCheckUsable(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("general種別は全アイテムに適用", func(t *testing.T) {
		p, err := builder.NewPromotionBuilder().WithType("general").BuildDomain()
		require.NoError(t, err)
		for _, it := range []catalog.ItemType{catalog.ItemTypeHotel, catalog.ItemTypeFlight, catalog.ItemTypeTour, catalog.ItemTypeCar} {
			assert.NoError(t, p.CheckUsable(it, now), it)
		}
	})

	t.Run("種別一致のみ適用", func(t *testing.T) {
		p, err := builder.NewPromotionBuilder().WithType("flight").BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, p.CheckUsable(catalog.ItemTypeFlight, now))
		require.ErrorIs(t, p.CheckUsable(catalog.ItemTypeHotel, now), promotion.ErrPromotionNotApplicable)
	})

	t.Run("期間判定が種別判定より優先", func(t *testing.T) {
		p, err := builder.NewPromotionBuilder().WithType("flight").AsInactive().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, p.CheckUsable(catalog.ItemTypeHotel, now), promotion.ErrPromotionInactive)
	})
}

func TestDiscountedTotal(t *testing.T) {
	base, err := money.FromCents(60000)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*builder.PromotionBuilder)
		want   int64
	}{
		{name: "割合割引", mutate: func(b *builder.PromotionBuilder) { b.WithPercent(20) }, want: 48000},
		{name: "定額割引", mutate: func(b *builder.PromotionBuilder) { b.WithPercent(0).WithAmount(5000) }, want: 55000},
		{name: "割合が定額より優先", mutate: func(b *builder.PromotionBuilder) { b.WithPercent(50).WithAmount(100) }, want: 30000},
		{name: "定額が基本料金を超えてもゼロ止まり", mutate: func(b *builder.PromotionBuilder) { b.WithPercent(0).WithAmount(99999999) }, want: 0},
		{name: "割引なし", mutate: func(b *builder.PromotionBuilder) { b.WithPercent(0).WithAmount(0) }, want: 60000},
		{name: "100%割引", mutate: func(b *builder.PromotionBuilder) { b.WithPercent(100) }, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := builder.NewPromotionBuilder().With(tt.mutate).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.DiscountedTotal(base).Cents())
		})
	}
}

func TestRemainingDays(t *testing.T) {
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	p, err := builder.NewPromotionBuilder().WithPeriod(end.AddDate(0, -1, 0), end).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, 10, p.RemainingDays(end.AddDate(0, 0, -10)))
	assert.Equal(t, 9, p.RemainingDays(end.AddDate(0, 0, -10).Add(time.Hour)))
	assert.Equal(t, 0, p.RemainingDays(end))
	assert.Equal(t, 0, p.RemainingDays(end.AddDate(0, 0, 3)))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewPromotionBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
