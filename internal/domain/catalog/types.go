package catalog

import "errors"

var ErrUnknownItemType = errors.New("unknown item type")

type ItemType string

const (
	ItemTypeHotel  ItemType = "hotel"
	ItemTypeFlight ItemType = "flight"
	ItemTypeTour   ItemType = "tour"
	ItemTypeCar    ItemType = "car"
)

func ParseItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if !t.IsValid() {
		return "", ErrUnknownItemType
	}
	return t, nil
}

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeHotel, ItemTypeFlight, ItemTypeTour, ItemTypeCar:
		return true
	default:
		return false
	}
}

func (t ItemType) String() string {
	return string(t)
}

// PricingBasis says what the unit price of an item is multiplied by.
type PricingBasis int

const (
	PerNight PricingBasis = iota + 1
	PerGuest
	PerTrip
)

func (t ItemType) PricingBasis() PricingBasis {
	switch t {
	case ItemTypeHotel:
		return PerNight
	case ItemTypeFlight, ItemTypeTour:
		return PerGuest
	default:
		return PerTrip
	}
}
