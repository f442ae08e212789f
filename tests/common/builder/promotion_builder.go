//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/promotion"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionBuilder struct {
	ID                  uuid.UUID
	Code                *string
	Type                string
	Title               string
	Description         string
	DiscountPercent     int
	DiscountAmountCents int64
	StartDate           time.Time
	EndDate             time.Time
	IsActive            bool
}

func NewPromotionBuilder() *PromotionBuilder {
	code := "SUMMER20"
	return &PromotionBuilder{
		ID:              uuid.New(),
		Code:            &code,
		Type:            promotion.TypeGeneral.String(),
		Title:           "Summer Sale",
		Description:     "20% off everything",
		DiscountPercent: 20,
		StartDate:       time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:        true,
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	if mutate != nil {
		mutate(p)
	}
	return p
}

// Fluent builder methods
func (p *PromotionBuilder) WithCode(code string) *PromotionBuilder {
	p.Code = &code
	return p
}

func (p *PromotionBuilder) WithoutCode() *PromotionBuilder {
	p.Code = nil
	return p
}

func (p *PromotionBuilder) WithPercent(percent int) *PromotionBuilder {
	p.DiscountPercent = percent
	return p
}

func (p *PromotionBuilder) WithAmount(cents int64) *PromotionBuilder {
	p.DiscountAmountCents = cents
	return p
}

func (p *PromotionBuilder) WithType(t string) *PromotionBuilder {
	p.Type = t
	return p
}

func (p *PromotionBuilder) WithPeriod(start, end time.Time) *PromotionBuilder {
	p.StartDate = start
	p.EndDate = end
	return p
}

func (p *PromotionBuilder) AsInactive() *PromotionBuilder {
	p.IsActive = false
	return p
}

// Build methods
func (p *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	amount, err := money.FromCents(p.DiscountAmountCents)
	if err != nil {
		return nil, err
	}

	return promotion.NewPromotion(promotion.Params{
		ID:              p.ID,
		Code:            p.Code,
		PromotionType:   p.Type,
		Title:           p.Title,
		Description:     p.Description,
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  amount,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		IsActive:        p.IsActive,
	})
}

func (p *PromotionBuilder) BuildInfra() sqlc.Promotions {
	var code pgtype.Text
	if p.Code != nil {
		code = pgtype.Text{String: *p.Code, Valid: true}
	}

	return sqlc.Promotions{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		PromotionType:   p.Type,
		PromoCode:       code,
		DiscountPercent: int32(p.DiscountPercent), // #nosec G115 -- test fixture
		DiscountAmount:  pgconv.CentsToNumeric(p.DiscountAmountCents),
		StartDate:       pgconv.TimeToPgtype(p.StartDate),
		EndDate:         pgconv.TimeToPgtype(p.EndDate),
		IsActive:        p.IsActive,
		CreatedAt:       pgconv.TimeToPgtype(p.StartDate),
	}
}
