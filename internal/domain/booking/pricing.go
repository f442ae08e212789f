package booking

import (
	"errors"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/promotion"
)

// Advisory explains why a supplied promo code did not reduce the price.
type Advisory string

const (
	AdvisoryPromoNotFound      Advisory = "PROMO_NOT_FOUND"
	AdvisoryPromoInactive      Advisory = "PROMO_INACTIVE"
	AdvisoryPromoNotYetValid   Advisory = "PROMO_NOT_YET_VALID"
	AdvisoryPromoExpired       Advisory = "PROMO_EXPIRED"
	AdvisoryPromoNotApplicable Advisory = "PROMO_NOT_APPLICABLE"
)

func (a Advisory) Message() string {
	switch a {
	case AdvisoryPromoNotFound:
		return "Invalid promo code"
	case AdvisoryPromoInactive:
		return "Promo code is no longer active"
	case AdvisoryPromoNotYetValid:
		return "Promo code is not valid yet"
	case AdvisoryPromoExpired:
		return "Promo code has expired"
	case AdvisoryPromoNotApplicable:
		return "Promo code does not apply to this item"
	default:
		return string(a)
	}
}

type PriceResult struct {
	Base     money.Money
	Discount money.Money
	Total    money.Money
	// Promotion is set only when it actually discounted the price.
	Promotion *promotion.Promotion
	Advisory  *Advisory
}

// ComputePrice prices req against item (and room, for hotel bookings).
// promo is the promotion resolved from req.PromoCode, nil when the code did not resolve.
// It is pure: now is the only notion of time it uses.
func ComputePrice(
	item *catalog.Item,
	room *catalog.Room,
	req Request,
	promo *promotion.Promotion,
	now time.Time,
) (PriceResult, error) {
	if err := req.Validate(); err != nil {
		return PriceResult{}, err
	}
	if item == nil || item.ID() != req.ItemID {
		return PriceResult{}, itemNotFound("%s %s", req.ItemType, req.ItemID)
	}
	if item.Type() != req.ItemType {
		return PriceResult{}, invalidParams("item %s is a %s, not a %s", item.ID(), item.Type(), req.ItemType)
	}
	if req.RoomID != nil && (room == nil || room.ID() != *req.RoomID || !room.BelongsTo(item)) {
		return PriceResult{}, itemNotFound("room %s of hotel %s", *req.RoomID, item.ID())
	}

	base, err := basePrice(item, room, req)
	if err != nil {
		return PriceResult{}, invalidParams("booking price exceeds the supported maximum: %v", err)
	}
	result := PriceResult{Base: base, Discount: money.Zero(), Total: base}

	if promo == nil {
		if req.PromoCode != "" {
			result.Advisory = advisory(AdvisoryPromoNotFound)
		}
		return result, nil
	}

	if err := promo.CheckUsable(req.ItemType, now); err != nil {
		result.Advisory = advisoryFor(err)
		return result, nil
	}

	result.Total = promo.DiscountedTotal(base)
	result.Discount = base.Minus(result.Total)
	result.Promotion = promo
	return result, nil
}

func basePrice(item *catalog.Item, room *catalog.Room, req Request) (money.Money, error) {
	switch item.Type().PricingBasis() {
	case catalog.PerNight:
		unit := item.Price()
		if room != nil {
			unit = room.Price()
		}
		nights, ok := req.Stay.Nights()
		if !ok || nights <= 0 {
			return unit, nil
		}
		perGuest, err := unit.Times(int64(nights))
		if err != nil {
			return money.Money{}, err
		}
		return perGuest.Times(int64(req.Guests))
	case catalog.PerGuest:
		return item.Price().Times(int64(req.Guests))
	default:
		return item.Price(), nil
	}
}

func advisoryFor(err error) *Advisory {
	switch {
	case errors.Is(err, promotion.ErrPromotionInactive):
		return advisory(AdvisoryPromoInactive)
	case errors.Is(err, promotion.ErrPromotionNotYetValid):
		return advisory(AdvisoryPromoNotYetValid)
	case errors.Is(err, promotion.ErrPromotionExpired):
		return advisory(AdvisoryPromoExpired)
	case errors.Is(err, promotion.ErrPromotionNotApplicable):
		return advisory(AdvisoryPromoNotApplicable)
	default:
		return advisory(AdvisoryPromoNotFound)
	}
}

func advisory(a Advisory) *Advisory {
	return &a
}
