package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	BookingType     string     `json:"booking_type"`
	ItemID          uuid.UUID  `json:"item_id"`
	ItemName        string     `json:"item_name"`
	RoomID          *uuid.UUID `json:"room_id,omitempty"`
	RoomName        *string    `json:"room_name,omitempty"`
	BookingDate     time.Time  `json:"booking_date"`
	CheckInDate     *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate    *time.Time `json:"check_out_date,omitempty"`
	NumberOfGuests  int        `json:"number_of_guests"`
	SpecialRequests string     `json:"special_requests"`
	PromotionID     *uuid.UUID `json:"promotion_id,omitempty"`
	PromoCode       *string    `json:"promo_code,omitempty"`
	BasePriceCents  int64      `json:"base_price_cents"`
	DiscountCents   int64      `json:"discount_cents"`
	TotalPriceCents int64      `json:"total_price_cents"`
	Status          string     `json:"status"`
	ServiceEndsAt   *time.Time `json:"service_ends_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID  `json:"id"`
	BookingType     string     `json:"booking_type"`
	ItemName        string     `json:"item_name"`
	BookingDate     time.Time  `json:"booking_date"`
	CheckInDate     *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate    *time.Time `json:"check_out_date,omitempty"`
	NumberOfGuests  int        `json:"number_of_guests"`
	TotalPriceCents int64      `json:"total_price_cents"`
	Status          string     `json:"status"`
}

// ItemView represents a catalog item as shown to visitors
type ItemView struct {
	Type            string     `json:"type"`
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	LocationName    string     `json:"location_name"`
	PriceCents      int64      `json:"price_cents"`
	Rating          float64    `json:"rating"`
	Airline         string     `json:"airline,omitempty"`
	OriginName      string     `json:"origin_name,omitempty"`
	DestinationName string     `json:"destination_name,omitempty"`
	DepartureTime   *time.Time `json:"departure_time,omitempty"`
	ArrivalTime     *time.Time `json:"arrival_time,omitempty"`
	DurationDays    int32      `json:"duration_days,omitempty"`
	CarType         string     `json:"car_type,omitempty"`
	Capacity        int32      `json:"capacity,omitempty"`
}

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Name        string    `json:"name"`
	RoomType    string    `json:"room_type"`
	BedType     string    `json:"bed_type"`
	PriceCents  int64     `json:"price_cents"`
	Capacity    int32     `json:"capacity"`
	IsAvailable bool      `json:"is_available"`
}

// PromotionView is a promotion valid now, with the days it has left
type PromotionView struct {
	ID                  uuid.UUID `json:"id"`
	Code                *string   `json:"code,omitempty"`
	Type                string    `json:"type"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	DiscountPercent     int       `json:"discount_percent"`
	DiscountAmountCents int64     `json:"discount_amount_cents"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	RemainingDays       int       `json:"remaining_days"`
}
