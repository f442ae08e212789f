package catalog

import (
	"errors"
	"strings"
	"time"

	"travel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemID      = errors.New("item id is required")
	ErrInvalidItemName    = errors.New("item name is required")
	ErrInvalidDuration    = errors.New("tour duration cannot be negative")
	ErrMissingArrivalTime = errors.New("flight arrival time is required")
)

// Item is a read-only snapshot of one bookable catalog entry.
type Item struct {
	itemType     ItemType
	id           uuid.UUID
	name         string
	price        money.Money
	arrivalTime  *time.Time
	durationDays int
}

func newItem(itemType ItemType, id uuid.UUID, name string, price money.Money) (*Item, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidItemID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidItemName
	}
	return &Item{itemType: itemType, id: id, name: name, price: price}, nil
}

func NewHotel(id uuid.UUID, name string, price money.Money) (*Item, error) {
	return newItem(ItemTypeHotel, id, name, price)
}

func NewFlight(id uuid.UUID, flightNumber string, price money.Money, arrivalTime time.Time) (*Item, error) {
	if arrivalTime.IsZero() {
		return nil, ErrMissingArrivalTime
	}
	item, err := newItem(ItemTypeFlight, id, flightNumber, price)
	if err != nil {
		return nil, err
	}
	arrival := arrivalTime.UTC()
	item.arrivalTime = &arrival
	return item, nil
}

func NewTour(id uuid.UUID, name string, price money.Money, durationDays int) (*Item, error) {
	if durationDays < 0 {
		return nil, ErrInvalidDuration
	}
	item, err := newItem(ItemTypeTour, id, name, price)
	if err != nil {
		return nil, err
	}
	item.durationDays = durationDays
	return item, nil
}

func NewCarTransfer(id uuid.UUID, name string, price money.Money) (*Item, error) {
	return newItem(ItemTypeCar, id, name, price)
}

func (i *Item) Type() ItemType          { return i.itemType }
func (i *Item) ID() uuid.UUID           { return i.id }
func (i *Item) Name() string            { return i.name }
func (i *Item) Price() money.Money      { return i.price }
func (i *Item) ArrivalTime() *time.Time { return i.arrivalTime }
func (i *Item) DurationDays() int       { return i.durationDays }

type Room struct {
	id      uuid.UUID
	hotelID uuid.UUID
	name    string
	price   money.Money
}

func NewRoom(id, hotelID uuid.UUID, name string, price money.Money) (*Room, error) {
	if id == uuid.Nil || hotelID == uuid.Nil {
		return nil, ErrInvalidItemID
	}
	return &Room{id: id, hotelID: hotelID, name: strings.TrimSpace(name), price: price}, nil
}

func (r *Room) ID() uuid.UUID      { return r.id }
func (r *Room) HotelID() uuid.UUID { return r.hotelID }
func (r *Room) Name() string       { return r.name }
func (r *Room) Price() money.Money { return r.price }

// BelongsTo reports whether the room is part of the given hotel item.
func (r *Room) BelongsTo(hotel *Item) bool {
	return hotel != nil && hotel.itemType == ItemTypeHotel && hotel.id == r.hotelID
}
