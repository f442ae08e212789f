package booking

import (
	"travel-booking/internal/domain/catalog"

	"github.com/google/uuid"
)

const (
	MaxGuests     = 100
	MaxStayNights = 365
)

// Request is the caller's booking input. It is never persisted as such.
type Request struct {
	ItemType        catalog.ItemType
	ItemID          uuid.UUID
	RoomID          *uuid.UUID
	Stay            Stay
	Guests          int
	SpecialRequests SpecialRequests
	PromoCode       string
}

// Validate checks the request on its own, before any catalog lookup.
func (r Request) Validate() error {
	if !r.ItemType.IsValid() {
		return invalidParams("unknown item type %q", r.ItemType)
	}
	if r.ItemID == uuid.Nil {
		return invalidParams("item id is required")
	}
	if r.Guests < 1 {
		return invalidParams("number of guests must be at least 1, got %d", r.Guests)
	}
	if r.Guests > MaxGuests {
		return invalidParams("number of guests must be at most %d, got %d", MaxGuests, r.Guests)
	}
	if r.RoomID != nil && r.ItemType != catalog.ItemTypeHotel {
		return invalidParams("room can only be booked with a hotel, got %s", r.ItemType)
	}
	if r.ItemType == catalog.ItemTypeHotel {
		if r.Stay.HasAnyDate() && !r.Stay.HasBothDates() {
			return invalidParams("hotel bookings need both check-in and check-out dates or neither")
		}
		if r.Stay.HasBothDates() && r.Stay.CheckOut().Before(*r.Stay.CheckIn()) {
			return ErrInvalidDateRange
		}
		if nights, ok := r.Stay.Nights(); ok && nights > MaxStayNights {
			return invalidParams("stay must be at most %d nights, got %d", MaxStayNights, nights)
		}
	}
	return nil
}

func (r Request) ItemRef() (ItemRef, error) {
	return NewItemRef(r.ItemType, r.ItemID, r.RoomID)
}
