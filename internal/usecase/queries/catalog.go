package queries

import (
	"context"
	"strings"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/promotion"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrItemNotFound    = errs.New("item not found")
	ErrInvalidItemType = errs.New("invalid item type")
)

type CatalogQueries interface {
	GetItem(ctx context.Context, itemType string, id uuid.UUID) (*ItemView, error)
	GetRoom(ctx context.Context, hotelID, roomID uuid.UUID) (*RoomView, error)
	// ListApplicablePromotions lists promotions valid now for itemType, general ones included.
	// An empty itemType lists general promotions only.
	ListApplicablePromotions(ctx context.Context, itemType string) ([]*PromotionView, error)
}

type catalogQueriesImpl struct {
	catalog    shared.CatalogReader
	promotions shared.PromotionReader
	clock      clock.Clock
}

func NewCatalogQueries(catalog shared.CatalogReader, promotions shared.PromotionReader, clk clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{
		catalog:    catalog,
		promotions: promotions,
		clock:      clk,
	}
}

func (q *catalogQueriesImpl) GetItem(ctx context.Context, itemType string, id uuid.UUID) (*ItemView, error) {
	t, err := catalog.ParseItemType(itemType)
	if err != nil {
		return nil, errs.Wrapf(ErrInvalidItemType, "%q", itemType)
	}

	snap, err := q.catalog.ItemByID(ctx, t, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	var view ItemView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to map item view")
	}
	return &view, nil
}

func (q *catalogQueriesImpl) GetRoom(ctx context.Context, hotelID, roomID uuid.UUID) (*RoomView, error) {
	snap, err := q.catalog.RoomOfHotel(ctx, roomID, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	var view RoomView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to map room view")
	}
	return &view, nil
}

func (q *catalogQueriesImpl) ListApplicablePromotions(ctx context.Context, itemType string) ([]*PromotionView, error) {
	raw := strings.TrimSpace(itemType)
	if raw == "" {
		raw = promotion.TypeGeneral.String()
	}
	promotionType, err := promotion.NewType(raw)
	if err != nil {
		return nil, errs.Wrapf(ErrInvalidItemType, "%q", itemType)
	}

	now := q.clock.Now()
	promos, err := q.promotions.ValidForType(ctx, promotionType, now)
	if err != nil {
		return nil, err
	}

	views := make([]*PromotionView, 0, len(promos))
	for _, p := range promos {
		views = append(views, toPromotionView(p, now))
	}
	return views, nil
}

func toPromotionView(p *promotion.Promotion, now time.Time) *PromotionView {
	view := &PromotionView{
		ID:                  p.ID(),
		Type:                p.Type().String(),
		Title:               p.Title(),
		Description:         p.Description(),
		DiscountPercent:     p.DiscountPercent(),
		DiscountAmountCents: p.DiscountAmount().Cents(),
		StartDate:           p.StartDate(),
		EndDate:             p.EndDate(),
		RemainingDays:       p.RemainingDays(now),
	}
	if code := p.Code(); code != nil {
		s := code.String()
		view.Code = &s
	}
	return view
}
