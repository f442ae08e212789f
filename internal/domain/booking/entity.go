package booking

import (
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/promotion"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	item            ItemRef
	bookingDate     time.Time
	stay            Stay
	guests          int
	specialRequests SpecialRequests
	promotionID     *uuid.UUID
	basePrice       money.Money
	discount        money.Money
	totalPrice      money.Money
	status          Status
	serviceEndsAt   *time.Time
	updatedAt       time.Time
}

// NewBooking prices req and builds a booking in the given initial status.
// The returned PriceResult carries any promotion advisory for the caller to surface.
func NewBooking(
	userID uuid.UUID,
	item *catalog.Item,
	room *catalog.Room,
	req Request,
	promo *promotion.Promotion,
	initial Status,
	now time.Time,
) (*Booking, PriceResult, error) {
	if userID == uuid.Nil {
		return nil, PriceResult{}, invalidParams("user is required")
	}
	if !initial.IsInitial() {
		return nil, PriceResult{}, errs.Wrapf(ErrInvalidStatus, "%q cannot be an initial status", initial)
	}

	price, err := ComputePrice(item, room, req, promo, now)
	if err != nil {
		return nil, PriceResult{}, err
	}

	ref, err := req.ItemRef()
	if err != nil {
		return nil, PriceResult{}, err
	}

	var promotionID *uuid.UUID
	if price.Promotion != nil {
		id := price.Promotion.ID()
		promotionID = &id
	}

	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		item:            ref,
		bookingDate:     now,
		stay:            req.Stay,
		guests:          req.Guests,
		specialRequests: req.SpecialRequests,
		promotionID:     promotionID,
		basePrice:       price.Base,
		discount:        price.Discount,
		totalPrice:      price.Total,
		status:          initial,
		serviceEndsAt:   serviceEndsAt(item, req.Stay),
		updatedAt:       now,
	}, price, nil
}

type ReconstructParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Item            ItemRef
	BookingDate     time.Time
	Stay            Stay
	Guests          int
	SpecialRequests string
	PromotionID     *uuid.UUID
	BasePrice       money.Money
	Discount        money.Money
	TotalPrice      money.Money
	Status          Status
	ServiceEndsAt   *time.Time
	UpdatedAt       time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:              p.ID,
		userID:          p.UserID,
		item:            p.Item,
		bookingDate:     p.BookingDate,
		stay:            p.Stay,
		guests:          p.Guests,
		specialRequests: SpecialRequests(p.SpecialRequests),
		promotionID:     p.PromotionID,
		basePrice:       p.BasePrice,
		discount:        p.Discount,
		totalPrice:      p.TotalPrice,
		status:          p.Status,
		serviceEndsAt:   p.ServiceEndsAt,
		updatedAt:       p.UpdatedAt,
	}
}

// TransitionTo moves the booking to target and returns the status it left.
// Cancelling a confirmed booking is refused once the service date has passed,
// and completing one is refused before it. Both guards are skipped when the service date is unknown.
func (b *Booking) TransitionTo(target Status, now time.Time) (Status, error) {
	from := b.status
	if !from.CanTransitionTo(target) {
		return from, errs.Wrapf(ErrInvalidStatusTransition, "%s -> %s", from, target)
	}

	if from == StatusConfirmed && b.serviceEndsAt != nil {
		switch {
		case target == StatusCancelled && !now.Before(*b.serviceEndsAt):
			return from, errs.Wrapf(ErrInvalidStatusTransition, "cannot cancel after the service date %s", b.serviceEndsAt.Format(time.RFC3339))
		case target == StatusCompleted && now.Before(*b.serviceEndsAt):
			return from, errs.Wrapf(ErrInvalidStatusTransition, "cannot complete before the service date %s", b.serviceEndsAt.Format(time.RFC3339))
		}
	}

	b.status = target
	b.updatedAt = now
	return from, nil
}

// IsCompletableAt reports whether the sweeper may complete the booking at now.
func (b *Booking) IsCompletableAt(now time.Time) bool {
	return b.status == StatusConfirmed && b.serviceEndsAt != nil && !now.Before(*b.serviceEndsAt)
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) UserID() uuid.UUID                { return b.userID }
func (b *Booking) Item() ItemRef                    { return b.item }
func (b *Booking) Type() catalog.ItemType           { return b.item.Type() }
func (b *Booking) BookingDate() time.Time           { return b.bookingDate }
func (b *Booking) Stay() Stay                       { return b.stay }
func (b *Booking) Guests() int                      { return b.guests }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
func (b *Booking) PromotionID() *uuid.UUID          { return b.promotionID }
func (b *Booking) BasePrice() money.Money           { return b.basePrice }
func (b *Booking) Discount() money.Money            { return b.discount }
func (b *Booking) TotalPrice() money.Money          { return b.totalPrice }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) ServiceEndsAt() *time.Time        { return b.serviceEndsAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }

// serviceEndsAt is the moment the booked service is over: hotel check-out,
// flight arrival, tour start plus its duration, or the car transfer date.
func serviceEndsAt(item *catalog.Item, stay Stay) *time.Time {
	var t *time.Time
	switch item.Type() {
	case catalog.ItemTypeHotel:
		t = stay.CheckOut()
	case catalog.ItemTypeFlight:
		t = item.ArrivalTime()
	case catalog.ItemTypeTour:
		if in := stay.CheckIn(); in != nil {
			end := in.AddDate(0, 0, item.DurationDays())
			t = &end
		}
	case catalog.ItemTypeCar:
		t = stay.CheckIn()
	}
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
