//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/promotion"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingBuilder defaults to a two-guest, three-night stay in a 100.00 room of a 120.00 hotel.
type BookingBuilder struct {
	UserID          uuid.UUID
	ItemType        catalog.ItemType
	ItemID          uuid.UUID
	ItemName        string
	ItemPriceCents  int64
	RoomID          *uuid.UUID
	RoomPriceCents  int64
	ArrivalTime     time.Time
	DurationDays    int
	CheckIn         *time.Time
	CheckOut        *time.Time
	Guests          int
	SpecialRequests string
	PromoCode       string
	Status          booking.Status
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	roomID := uuid.New()
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:         uuid.New(),
		ItemType:       catalog.ItemTypeHotel,
		ItemID:         uuid.New(),
		ItemName:       "Grand Hotel",
		ItemPriceCents: 12000,
		RoomID:         &roomID,
		RoomPriceCents: 10000,
		CheckIn:        &checkIn,
		CheckOut:       &checkOut,
		Guests:         2,
		Status:         booking.StatusConfirmed,
		Now:            time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Fluent builder methods
func (b *BookingBuilder) AsFlight(priceCents int64, arrival time.Time) *BookingBuilder {
	b.ItemType = catalog.ItemTypeFlight
	b.ItemName = "JL123"
	b.ItemPriceCents = priceCents
	b.ArrivalTime = arrival
	b.RoomID = nil
	return b
}

func (b *BookingBuilder) AsTour(priceCents int64, durationDays int) *BookingBuilder {
	b.ItemType = catalog.ItemTypeTour
	b.ItemName = "Kyoto Temple Walk"
	b.ItemPriceCents = priceCents
	b.DurationDays = durationDays
	b.RoomID = nil
	return b
}

func (b *BookingBuilder) AsCar(priceCents int64) *BookingBuilder {
	b.ItemType = catalog.ItemTypeCar
	b.ItemName = "Airport Sedan"
	b.ItemPriceCents = priceCents
	b.RoomID = nil
	return b
}

func (b *BookingBuilder) WithoutRoom() *BookingBuilder {
	b.RoomID = nil
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut *time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithPromoCode(code string) *BookingBuilder {
	b.PromoCode = code
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

// Build methods
func (b *BookingBuilder) BuildItem() (*catalog.Item, error) {
	price, err := money.FromCents(b.ItemPriceCents)
	if err != nil {
		return nil, err
	}

	switch b.ItemType {
	case catalog.ItemTypeFlight:
		return catalog.NewFlight(b.ItemID, b.ItemName, price, b.ArrivalTime)
	case catalog.ItemTypeTour:
		return catalog.NewTour(b.ItemID, b.ItemName, price, b.DurationDays)
	case catalog.ItemTypeCar:
		return catalog.NewCarTransfer(b.ItemID, b.ItemName, price)
	default:
		return catalog.NewHotel(b.ItemID, b.ItemName, price)
	}
}

func (b *BookingBuilder) BuildRoom() *catalog.Room {
	if b.RoomID == nil || b.ItemType != catalog.ItemTypeHotel {
		return nil
	}
	price, _ := money.FromCents(b.RoomPriceCents)
	room, _ := catalog.NewRoom(*b.RoomID, b.ItemID, "Deluxe Twin", price)
	return room
}

func (b *BookingBuilder) BuildRequest() booking.Request {
	return booking.Request{
		ItemType:        b.ItemType,
		ItemID:          b.ItemID,
		RoomID:          b.RoomID,
		Stay:            booking.NewStay(b.CheckIn, b.CheckOut),
		Guests:          b.Guests,
		SpecialRequests: booking.SpecialRequests(b.SpecialRequests),
		PromoCode:       b.PromoCode,
	}
}

func (b *BookingBuilder) BuildDomain(promo *promotion.Promotion) (*booking.Booking, booking.PriceResult, error) {
	item, err := b.BuildItem()
	if err != nil {
		return nil, booking.PriceResult{}, err
	}
	return booking.NewBooking(b.UserID, item, b.BuildRoom(), b.BuildRequest(), promo, b.Status, b.Now)
}

// BuildReconstructed loads the booking as persisted, so any status is allowed.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	ref, _ := booking.NewItemRef(b.ItemType, b.ItemID, b.RoomID)
	base, _ := money.FromCents(b.RoomPriceCents * 3 * int64(b.Guests))
	end := b.CheckOut
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:              uuid.New(),
		UserID:          b.UserID,
		Item:            ref,
		BookingDate:     b.Now,
		Stay:            booking.NewStay(b.CheckIn, b.CheckOut),
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		BasePrice:       base,
		Discount:        money.Zero(),
		TotalPrice:      base,
		Status:          b.Status,
		ServiceEndsAt:   end,
		UpdatedAt:       b.Now,
	})
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		ItemType: b.ItemType.String(),
		ItemID:   b.ItemID,
		RoomID:   b.RoomID,
	}
	if b.CheckIn != nil {
		s := b.CheckIn.Format(reqdto.DateLayout)
		req.CheckInDate = &s
	}
	if b.CheckOut != nil {
		s := b.CheckOut.Format(reqdto.DateLayout)
		req.CheckOutDate = &s
	}
	guests := b.Guests
	req.NumberOfGuests = &guests
	if b.SpecialRequests != "" {
		s := b.SpecialRequests
		req.SpecialRequests = &s
	}
	if b.PromoCode != "" {
		code := b.PromoCode
		req.PromoCode = &code
	}
	return req
}

func (b *BookingBuilder) BuildSnapshot() *shared.ItemSnapshot {
	s := &shared.ItemSnapshot{
		Type:         b.ItemType.String(),
		ID:           b.ItemID,
		Name:         b.ItemName,
		LocationName: "Tokyo",
		PriceCents:   b.ItemPriceCents,
		Rating:       4.5,
	}
	switch b.ItemType {
	case catalog.ItemTypeFlight:
		arrival := b.ArrivalTime
		s.ArrivalTime = &arrival
		s.Airline = "JAL"
	case catalog.ItemTypeTour:
		s.DurationDays = int32(b.DurationDays) // #nosec G115 -- test fixture
	case catalog.ItemTypeCar:
		s.CarType = "sedan"
		s.Capacity = 4
	}
	return s
}

func (b *BookingBuilder) BuildRoomSnapshot() *shared.RoomSnapshot {
	if b.RoomID == nil {
		return nil
	}
	return &shared.RoomSnapshot{
		ID:          *b.RoomID,
		HotelID:     b.ItemID,
		Name:        "Deluxe Twin",
		RoomType:    "deluxe",
		BedType:     "twin",
		PriceCents:  b.RoomPriceCents,
		Capacity:    2,
		IsAvailable: true,
	}
}

func (b *BookingBuilder) BuildView(id uuid.UUID) *queries.BookingView {
	base := b.RoomPriceCents * 3 * int64(b.Guests)
	return &queries.BookingView{
		ID:              id,
		UserID:          b.UserID,
		BookingType:     b.ItemType.String(),
		ItemID:          b.ItemID,
		ItemName:        b.ItemName,
		RoomID:          b.RoomID,
		BookingDate:     b.Now,
		CheckInDate:     b.CheckIn,
		CheckOutDate:    b.CheckOut,
		NumberOfGuests:  b.Guests,
		SpecialRequests: b.SpecialRequests,
		BasePriceCents:  base,
		TotalPriceCents: base,
		Status:          b.Status.String(),
		ServiceEndsAt:   b.CheckOut,
		UpdatedAt:       b.Now,
	}
}
