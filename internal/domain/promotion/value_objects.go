package promotion

import (
	"errors"
	"regexp"
	"strings"

	"travel-booking/internal/domain/catalog"
)

var (
	ErrInvalidPromoCode       = errors.New("invalid promo code format")
	ErrInvalidPromotionType   = errors.New("invalid promotion type")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{1,31}$`)

type Code string

// NewCode trims and upper-cases s. Lookups always go through this normalization.
func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !promoCodeRegex.MatchString(s) {
		return "", ErrInvalidPromoCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

type Type string

const (
	TypeHotel   Type = "hotel"
	TypeFlight  Type = "flight"
	TypeTour    Type = "tour"
	TypeCar     Type = "car"
	TypeGeneral Type = "general"
)

func NewType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypeHotel, TypeFlight, TypeTour, TypeCar, TypeGeneral:
		return t, nil
	default:
		return "", ErrInvalidPromotionType
	}
}

// Covers reports whether a promotion of this type may discount an item of itemType.
func (t Type) Covers(itemType catalog.ItemType) bool {
	return t == TypeGeneral || string(t) == string(itemType)
}

func (t Type) String() string {
	return string(t)
}
