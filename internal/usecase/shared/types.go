package shared

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// ItemSnapshot is the catalog record of a bookable item.
// It is plain data so it can be cached as JSON.
type ItemSnapshot struct {
	Type         string    `json:"type"`
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LocationName string    `json:"locationName"`
	PriceCents   int64     `json:"priceCents"`
	Rating       float64   `json:"rating"`

	// flight
	Airline         string     `json:"airline,omitempty"`
	OriginName      string     `json:"originName,omitempty"`
	DestinationName string     `json:"destinationName,omitempty"`
	DepartureTime   *time.Time `json:"departureTime,omitempty"`
	ArrivalTime     *time.Time `json:"arrivalTime,omitempty"`

	// tour
	DurationDays int32 `json:"durationDays,omitempty"`

	// car
	CarType  string `json:"carType,omitempty"`
	Capacity int32  `json:"capacity,omitempty"`
}

func (s *ItemSnapshot) ToDomain() (*catalog.Item, error) {
	itemType, err := catalog.ParseItemType(s.Type)
	if err != nil {
		return nil, err
	}
	price, err := money.FromCents(s.PriceCents)
	if err != nil {
		return nil, err
	}

	switch itemType {
	case catalog.ItemTypeHotel:
		return catalog.NewHotel(s.ID, s.Name, price)
	case catalog.ItemTypeFlight:
		var arrival time.Time
		if s.ArrivalTime != nil {
			arrival = *s.ArrivalTime
		}
		return catalog.NewFlight(s.ID, s.Name, price, arrival)
	case catalog.ItemTypeTour:
		return catalog.NewTour(s.ID, s.Name, price, int(s.DurationDays))
	default:
		return catalog.NewCarTransfer(s.ID, s.Name, price)
	}
}

type RoomSnapshot struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotelId"`
	Name        string    `json:"name"`
	RoomType    string    `json:"roomType"`
	BedType     string    `json:"bedType"`
	PriceCents  int64     `json:"priceCents"`
	Capacity    int32     `json:"capacity"`
	IsAvailable bool      `json:"isAvailable"`
}

func (s *RoomSnapshot) ToDomain() (*catalog.Room, error) {
	price, err := money.FromCents(s.PriceCents)
	if err != nil {
		return nil, err
	}
	return catalog.NewRoom(s.ID, s.HotelID, s.Name, price)
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

func (r *IdempotencyRecord) IsExpiredAt(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// StatusEvent is the audit record of one booking status change.
// From is nil for the initial status and ActorID is nil for system changes.
type StatusEvent struct {
	BookingID uuid.UUID
	From      *booking.Status
	To        booking.Status
	ActorID   *uuid.UUID
	Reason    string
	At        time.Time
}
