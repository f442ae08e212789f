package readstore

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/promotion"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionReadQueries interface {
	GetPromotionByCode(ctx context.Context, db sqlc.DBTX, promoCode pgtype.Text) (sqlc.Promotions, error)
	ListValidPromotionsForType(ctx context.Context, db sqlc.DBTX, arg sqlc.ListValidPromotionsForTypeParams) ([]sqlc.Promotions, error)
}

type PromotionReadStore struct {
	queries PromotionReadQueries
	db      sqlc.DBTX
}

func NewPromotionReadStore(queries PromotionReadQueries, db sqlc.DBTX) *PromotionReadStore {
	return &PromotionReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode looks up a promotion by its normalized code, using db when given.
func (r *PromotionReadStore) FindByCode(ctx context.Context, db sqlc.DBTX, code promotion.Code) (*promotion.Promotion, error) {
	if db == nil {
		db = r.db
	}

	row, err := r.queries.GetPromotionByCode(ctx, db, pgtype.Text{String: code.String(), Valid: true})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by code", err)
	}

	promo, err := promotionFromRow(row)
	if err != nil {
		// Malformed rows read as an unknown code.
		slog.Warn("ignoring malformed promotion record", "promotion_id", row.ID, "error", err.Error())
		return nil, infra.WrapRepoErr("invalid promotion record", err, infra.KindNotFound)
	}
	return promo, nil
}

// ValidForType lists promotions valid at now that cover promotionType, general ones included.
func (r *PromotionReadStore) ValidForType(ctx context.Context, promotionType promotion.Type, now time.Time) ([]*promotion.Promotion, error) {
	params := sqlc.ListValidPromotionsForTypeParams{
		PromotionType: promotionType.String(),
		Now:           pgconv.TimeToPgtype(now),
	}

	rows, err := r.queries.ListValidPromotionsForType(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list valid promotions", err)
	}

	result := make([]*promotion.Promotion, 0, len(rows))
	for _, row := range rows {
		promo, err := promotionFromRow(row)
		if err != nil {
			slog.Warn("skipping malformed promotion record", "promotion_id", row.ID, "error", err.Error())
			continue
		}
		result = append(result, promo)
	}

	return result, nil
}

func promotionFromRow(row sqlc.Promotions) (*promotion.Promotion, error) {
	amountCents, err := pgconv.CentsFromNumeric(row.DiscountAmount)
	if err != nil {
		return nil, err
	}
	amount, err := money.FromCents(amountCents)
	if err != nil {
		return nil, err
	}

	return promotion.NewPromotion(promotion.Params{
		ID:              row.ID,
		Code:            pgconv.StringPtrFromPgtype(row.PromoCode),
		PromotionType:   row.PromotionType,
		Title:           row.Title,
		Description:     row.Description,
		DiscountPercent: int(row.DiscountPercent),
		DiscountAmount:  amount,
		StartDate:       pgconv.TimeFromPgtype(row.StartDate),
		EndDate:         pgconv.TimeFromPgtype(row.EndDate),
		IsActive:        row.IsActive,
	})
}
