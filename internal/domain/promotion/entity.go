package promotion

import (
	"errors"
	"strings"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrPromotionInactive      = errors.New("promotion is inactive")
	ErrPromotionNotYetValid   = errors.New("promotion is not yet valid")
	ErrPromotionExpired       = errors.New("promotion has expired")
	ErrPromotionNotApplicable = errors.New("promotion does not apply to this item type")
	ErrInvalidPeriod          = errors.New("promotion end date precedes start date")
	ErrMissingTitle           = errors.New("promotion title is required")
)

type Promotion struct {
	id              uuid.UUID
	code            *Code
	promotionType   Type
	title           string
	description     string
	discountPercent int
	discountAmount  money.Money
	startDate       time.Time
	endDate         time.Time
	isActive        bool
}

type Params struct {
	ID              uuid.UUID
	Code            *string
	PromotionType   string
	Title           string
	Description     string
	DiscountPercent int
	DiscountAmount  money.Money
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
}

func NewPromotion(p Params) (*Promotion, error) {
	var code *Code
	if p.Code != nil && strings.TrimSpace(*p.Code) != "" {
		c, err := NewCode(*p.Code)
		if err != nil {
			return nil, err
		}
		code = &c
	}

	promotionType, err := NewType(p.PromotionType)
	if err != nil {
		return nil, err
	}

	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		return nil, ErrInvalidDiscountPercent
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	if p.EndDate.Before(p.StartDate) {
		return nil, ErrInvalidPeriod
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Promotion{
		id:              id,
		code:            code,
		promotionType:   promotionType,
		title:           title,
		description:     p.Description,
		discountPercent: p.DiscountPercent,
		discountAmount:  p.DiscountAmount,
		startDate:       p.StartDate,
		endDate:         p.EndDate,
		isActive:        p.IsActive,
	}, nil
}

// IsValidAt holds iff the promotion is active and start <= t <= end.
func (p *Promotion) IsValidAt(t time.Time) bool {
	return p.ValidateAt(t) == nil
}

func (p *Promotion) ValidateAt(t time.Time) error {
	if !p.isActive {
		return ErrPromotionInactive
	}
	if t.Before(p.startDate) {
		return ErrPromotionNotYetValid
	}
	if t.After(p.endDate) {
		return ErrPromotionExpired
	}
	return nil
}

func (p *Promotion) AppliesTo(itemType catalog.ItemType) bool {
	return p.promotionType.Covers(itemType)
}

// CheckUsable returns nil when the promotion may discount an item of itemType at t.
func (p *Promotion) CheckUsable(itemType catalog.ItemType, t time.Time) error {
	if err := p.ValidateAt(t); err != nil {
		return err
	}
	if !p.AppliesTo(itemType) {
		return ErrPromotionNotApplicable
	}
	return nil
}

// DiscountedTotal returns the price after this promotion. The percent discount wins when set;
// otherwise the fixed amount is subtracted. The result never drops below zero.
func (p *Promotion) DiscountedTotal(base money.Money) money.Money {
	switch {
	case p.discountPercent > 0:
		return base.Portion(100 - p.discountPercent)
	case !p.discountAmount.IsZero():
		return base.Minus(p.discountAmount)
	default:
		return base
	}
}

// RemainingDays counts whole days until the end date, zero once it has passed.
func (p *Promotion) RemainingDays(now time.Time) int {
	if !p.endDate.After(now) {
		return 0
	}
	return int(p.endDate.Sub(now) / (24 * time.Hour))
}

func (p *Promotion) ID() uuid.UUID               { return p.id }
func (p *Promotion) Code() *Code                 { return p.code }
func (p *Promotion) Type() Type                  { return p.promotionType }
func (p *Promotion) Title() string               { return p.title }
func (p *Promotion) Description() string         { return p.description }
func (p *Promotion) DiscountPercent() int        { return p.discountPercent }
func (p *Promotion) DiscountAmount() money.Money { return p.discountAmount }
func (p *Promotion) StartDate() time.Time        { return p.startDate }
func (p *Promotion) EndDate() time.Time          { return p.endDate }
func (p *Promotion) IsActive() bool              { return p.isActive }
