package booking

import (
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/promotion"
	"travel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock         clock.Clock
	InitialStatus Status
}

func NewFactory(clock clock.Clock, initialStatus Status) (*Factory, error) {
	if !initialStatus.IsInitial() {
		return nil, ErrInvalidStatus
	}
	return &Factory{
		Clock:         clock,
		InitialStatus: initialStatus,
	}, nil
}

func (f *Factory) CreateBooking(
	userID uuid.UUID,
	item *catalog.Item,
	room *catalog.Room,
	req Request,
	promo *promotion.Promotion,
) (*Booking, PriceResult, error) {
	return NewBooking(userID, item, room, req, promo, f.InitialStatus, f.Clock.Now())
}

func (f *Factory) Quote(item *catalog.Item, room *catalog.Room, req Request, promo *promotion.Promotion) (PriceResult, error) {
	return ComputePrice(item, room, req, promo, f.Clock.Now())
}
