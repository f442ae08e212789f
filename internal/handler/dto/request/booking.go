package request

import (
	"strings"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// CreateBookingRequest is the body of both POST /api/bookings and POST /api/bookings/quote.
type CreateBookingRequest struct {
	ItemType        string     `json:"itemType" binding:"required"`
	ItemID          uuid.UUID  `json:"itemId" binding:"required"`
	RoomID          *uuid.UUID `json:"roomId,omitempty"`
	CheckInDate     *string    `json:"checkInDate,omitempty"`
	CheckOutDate    *string    `json:"checkOutDate,omitempty"`
	NumberOfGuests  *int       `json:"numberOfGuests,omitempty" binding:"omitempty,max=100"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
	PromoCode       *string    `json:"promoCode,omitempty"`
}

func (r CreateBookingRequest) GetPromoCode() string {
	if r.PromoCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.PromoCode)
}

// ToDomain maps the body to a booking request. Omitted guests default to 1.
func (r CreateBookingRequest) ToDomain() (booking.Request, error) {
	itemType, err := catalog.ParseItemType(strings.TrimSpace(r.ItemType))
	if err != nil {
		return booking.Request{}, errs.Wrapf(booking.ErrInvalidBookingParameters, "unknown item type %q", r.ItemType)
	}

	checkIn, err := parseDate("checkInDate", r.CheckInDate)
	if err != nil {
		return booking.Request{}, err
	}
	checkOut, err := parseDate("checkOutDate", r.CheckOutDate)
	if err != nil {
		return booking.Request{}, err
	}

	guests := 1
	if r.NumberOfGuests != nil {
		guests = *r.NumberOfGuests
	}

	var notes string
	if r.SpecialRequests != nil {
		notes = *r.SpecialRequests
	}
	specialRequests, err := booking.NewSpecialRequests(notes)
	if err != nil {
		return booking.Request{}, err
	}

	return booking.Request{
		ItemType:        itemType,
		ItemID:          r.ItemID,
		RoomID:          r.RoomID,
		Stay:            booking.NewStay(checkIn, checkOut),
		Guests:          guests,
		SpecialRequests: specialRequests,
		PromoCode:       r.GetPromoCode(),
	}, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errs.Wrapf(booking.ErrInvalidBookingParameters, "%s must be YYYY-MM-DD, got %q", field, s)
	}
	t = t.UTC()
	return &t, nil
}

type UpdateBookingStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Reason *string `json:"reason,omitempty"`
}

func (r UpdateBookingStatusRequest) GetReason() string {
	if r.Reason == nil {
		return ""
	}
	return strings.TrimSpace(*r.Reason)
}
