package response

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	Type            string     `json:"type"`
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	LocationName    string     `json:"locationName,omitempty"`
	Price           string     `json:"price"`
	Rating          float64    `json:"rating"`
	Airline         string     `json:"airline,omitempty"`
	OriginName      string     `json:"originName,omitempty"`
	DestinationName string     `json:"destinationName,omitempty"`
	DepartureTime   *time.Time `json:"departureTime,omitempty"`
	ArrivalTime     *time.Time `json:"arrivalTime,omitempty"`
	DurationDays    int32      `json:"durationDays,omitempty"`
	CarType         string     `json:"carType,omitempty"`
	Capacity        int32      `json:"capacity,omitempty"`
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotelId"`
	Name        string    `json:"name"`
	RoomType    string    `json:"roomType"`
	BedType     string    `json:"bedType"`
	Price       string    `json:"price"`
	Capacity    int32     `json:"capacity"`
	IsAvailable bool      `json:"isAvailable"`
}

type PromotionResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            *string   `json:"code,omitempty"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DiscountPercent int       `json:"discountPercent"`
	DiscountAmount  string    `json:"discountAmount"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	RemainingDays   int       `json:"remainingDays"`
}

// Fields with matching names are copied; money is rendered separately.

func FromItemView(v *queries.ItemView) (*ItemResponse, error) {
	var res ItemResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.Price = FormatCents(v.PriceCents)
	return &res, nil
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.Price = FormatCents(v.PriceCents)
	return &res, nil
}

func FromPromotionViews(views []*queries.PromotionView) ([]*PromotionResponse, error) {
	res := make([]*PromotionResponse, len(views))
	for i, v := range views {
		var p PromotionResponse
		if err := copier.Copy(&p, v); err != nil {
			return nil, err
		}
		p.DiscountAmount = FormatCents(v.DiscountAmountCents)
		res[i] = &p
	}
	return res, nil
}
