package response

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/handler/dto/request"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"userId"`
	BookingType     string            `json:"bookingType"`
	ItemID          uuid.UUID         `json:"itemId"`
	ItemName        string            `json:"itemName"`
	RoomID          *uuid.UUID        `json:"roomId,omitempty"`
	RoomName        *string           `json:"roomName,omitempty"`
	BookingDate     time.Time         `json:"bookingDate"`
	CheckInDate     *string           `json:"checkInDate,omitempty"`
	CheckOutDate    *string           `json:"checkOutDate,omitempty"`
	NumberOfGuests  int               `json:"numberOfGuests"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	PromotionID     *uuid.UUID        `json:"promotionId,omitempty"`
	PromoCode       *string           `json:"promoCode,omitempty"`
	BasePrice       string            `json:"basePrice"`
	Discount        string            `json:"discount"`
	TotalPrice      string            `json:"totalPrice"`
	Status          string            `json:"status"`
	ServiceEndsAt   *time.Time        `json:"serviceEndsAt,omitempty"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Advisory        *AdvisoryResponse `json:"advisory,omitempty"`
}

type BookingListItemResponse struct {
	ID             uuid.UUID `json:"id"`
	BookingType    string    `json:"bookingType"`
	ItemName       string    `json:"itemName"`
	BookingDate    time.Time `json:"bookingDate"`
	CheckInDate    *string   `json:"checkInDate,omitempty"`
	CheckOutDate   *string   `json:"checkOutDate,omitempty"`
	NumberOfGuests int       `json:"numberOfGuests"`
	TotalPrice     string    `json:"totalPrice"`
	Status         string    `json:"status"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor,omitempty"`
}

// AdvisoryResponse tells the client why a promo code did not reduce the price.
type AdvisoryResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type QuoteResponse struct {
	BasePrice   string            `json:"basePrice"`
	Discount    string            `json:"discount"`
	TotalPrice  string            `json:"totalPrice"`
	PromotionID *uuid.UUID        `json:"promotionId,omitempty"`
	PromoCode   *string           `json:"promoCode,omitempty"`
	Advisory    *AdvisoryResponse `json:"advisory,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		BookingType:     v.BookingType,
		ItemID:          v.ItemID,
		ItemName:        v.ItemName,
		RoomID:          v.RoomID,
		RoomName:        v.RoomName,
		BookingDate:     v.BookingDate,
		CheckInDate:     formatDate(v.CheckInDate),
		CheckOutDate:    formatDate(v.CheckOutDate),
		NumberOfGuests:  v.NumberOfGuests,
		SpecialRequests: v.SpecialRequests,
		PromotionID:     v.PromotionID,
		PromoCode:       v.PromoCode,
		BasePrice:       FormatCents(v.BasePriceCents),
		Discount:        FormatCents(v.DiscountCents),
		TotalPrice:      FormatCents(v.TotalPriceCents),
		Status:          v.Status,
		ServiceEndsAt:   v.ServiceEndsAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromCreateBookingResult(v *queries.BookingView, advisory *booking.Advisory) *BookingResponse {
	res := FromBookingView(v)
	res.Advisory = FromAdvisory(advisory)
	return res
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: make([]*BookingListItemResponse, len(items))}
	for i, it := range items {
		res.Items[i] = &BookingListItemResponse{
			ID:             it.ID,
			BookingType:    it.BookingType,
			ItemName:       it.ItemName,
			BookingDate:    it.BookingDate,
			CheckInDate:    formatDate(it.CheckInDate),
			CheckOutDate:   formatDate(it.CheckOutDate),
			NumberOfGuests: it.NumberOfGuests,
			TotalPrice:     FormatCents(it.TotalPriceCents),
			Status:         it.Status,
		}
	}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res
}

func FromPriceResult(p *booking.PriceResult) *QuoteResponse {
	res := &QuoteResponse{
		BasePrice:  p.Base.String(),
		Discount:   p.Discount.String(),
		TotalPrice: p.Total.String(),
		Advisory:   FromAdvisory(p.Advisory),
	}
	if p.Promotion != nil {
		id := p.Promotion.ID()
		res.PromotionID = &id
		if code := p.Promotion.Code(); code != nil {
			s := code.String()
			res.PromoCode = &s
		}
	}
	return res
}

func FromAdvisory(a *booking.Advisory) *AdvisoryResponse {
	if a == nil {
		return nil
	}
	return &AdvisoryResponse{Code: string(*a), Message: a.Message()}
}

// FormatCents renders integer cents as a decimal string with two places.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(request.DateLayout)
	return &s
}
