package booking

import (
	"travel-booking/internal/domain/catalog"

	"github.com/google/uuid"
)

// ItemRef points at exactly one catalog item. The zero value is invalid;
// build it with HotelRef, FlightRef, TourRef, CarRef or NewItemRef.
type ItemRef struct {
	itemType catalog.ItemType
	id       uuid.UUID
	roomID   *uuid.UUID
}

func HotelRef(hotelID uuid.UUID, roomID *uuid.UUID) ItemRef {
	var room *uuid.UUID
	if roomID != nil {
		r := *roomID
		room = &r
	}
	return ItemRef{itemType: catalog.ItemTypeHotel, id: hotelID, roomID: room}
}

func FlightRef(flightID uuid.UUID) ItemRef {
	return ItemRef{itemType: catalog.ItemTypeFlight, id: flightID}
}

func TourRef(tourID uuid.UUID) ItemRef {
	return ItemRef{itemType: catalog.ItemTypeTour, id: tourID}
}

func CarRef(carID uuid.UUID) ItemRef {
	return ItemRef{itemType: catalog.ItemTypeCar, id: carID}
}

func NewItemRef(itemType catalog.ItemType, id uuid.UUID, roomID *uuid.UUID) (ItemRef, error) {
	if id == uuid.Nil {
		return ItemRef{}, invalidParams("item id is required")
	}
	if roomID != nil && itemType != catalog.ItemTypeHotel {
		return ItemRef{}, invalidParams("room can only be booked with a hotel, got %s", itemType)
	}
	switch itemType {
	case catalog.ItemTypeHotel:
		return HotelRef(id, roomID), nil
	case catalog.ItemTypeFlight:
		return FlightRef(id), nil
	case catalog.ItemTypeTour:
		return TourRef(id), nil
	case catalog.ItemTypeCar:
		return CarRef(id), nil
	default:
		return ItemRef{}, invalidParams("unknown item type %q", itemType)
	}
}

func (r ItemRef) Type() catalog.ItemType { return r.itemType }
func (r ItemRef) ID() uuid.UUID          { return r.id }
func (r ItemRef) RoomID() *uuid.UUID     { return r.roomID }

func (r ItemRef) HotelID() *uuid.UUID  { return r.idIf(catalog.ItemTypeHotel) }
func (r ItemRef) FlightID() *uuid.UUID { return r.idIf(catalog.ItemTypeFlight) }
func (r ItemRef) TourID() *uuid.UUID   { return r.idIf(catalog.ItemTypeTour) }
func (r ItemRef) CarID() *uuid.UUID    { return r.idIf(catalog.ItemTypeCar) }

func (r ItemRef) idIf(t catalog.ItemType) *uuid.UUID {
	if r.itemType != t {
		return nil
	}
	id := r.id
	return &id
}
