package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/promotion"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	CreateBookingEndpoint = "POST /api/bookings"

	TopicBookingCreated       = "booking_created"
	TopicBookingStatusChanged = "booking_status_changed"

	notificationKind = "email"
	completionReason = "service date passed"
)

var (
	ErrBookingNotFound         = queries.ErrBookingNotFound
	ErrBookingAccess           = queries.ErrBookingAccess
	ErrIdempotencyKeyReused    = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingResult struct {
	Booking *queries.BookingView
	// Advisory explains why a supplied promo code was not applied. Nil on replays.
	Advisory   *booking.Advisory
	IsReplayed bool
}

type StatusChange struct {
	Target string
	Reason string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	// Quote prices req without persisting anything.
	Quote(ctx context.Context, req reqdto.CreateBookingRequest) (*booking.PriceResult, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, change StatusChange, actor shared.Actor) (*queries.BookingView, error)
	// CompleteElapsed completes up to limit confirmed bookings whose service has ended.
	CompleteElapsed(ctx context.Context, limit int) (int, error)
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	catalog        shared.CatalogReader
	bookingFactory *booking.Factory
	bookingQueries queries.BookingQueries
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	catalog shared.CatalogReader,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	ttl := cfg.IdempotencyTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &bookingUseCaseImpl{
		uow:            uow,
		catalog:        catalog,
		bookingFactory: bookingFactory,
		bookingQueries: bookingQueries,
		clock:          clock,
		idempotencyTTL: ttl,
	}
}

func (b *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	domainReq, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	if err := domainReq.Validate(); err != nil {
		return nil, err
	}

	requestHash := b.calculateRequestHash(req)
	now := b.clock.Now()

	var (
		replayedID *uuid.UUID
		createdID  uuid.UUID
		advisory   *booking.Advisory
	)
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayedID, advisory = nil, nil

		existingID, err := b.claimIdempotencyKey(ctx, tx, idempotencyKey, userID, requestHash, now)
		if err != nil {
			return err
		}
		if existingID != nil {
			replayedID = existingID
			return nil
		}

		entity, price, err := b.buildBooking(ctx, tx.Reads(), userID, domainReq)
		if err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Wrapf(booking.ErrItemNotFound, "referenced row vanished while booking %s", domainReq.ItemID)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().RecordStatusEvent(ctx, tx.DB(), shared.StatusEvent{
			BookingID: id,
			To:        entity.Status(),
			ActorID:   &userID,
			Reason:    "created",
			At:        now,
		}); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := b.createNotificationJob(ctx, tx, TopicBookingCreated, map[string]any{
			"booking_id": id,
			"user_id":    userID,
			"status":     entity.Status().String(),
		}); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, b.calculateIDHash(id), id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		createdID = id
		advisory = price.Advisory
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayedID != nil {
		// Use system-level access for idempotency replay
		view, err := b.bookingQueries.GetByIDSystem(ctx, *replayedID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return &CreateBookingResult{Booking: view, IsReplayed: true}, nil
	}

	// Read-after-write: the view carries joined names the entity does not have
	view, err := b.bookingQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateBookingResult{Booking: view, Advisory: advisory}, nil
}

// claimIdempotencyKey returns the booking of a completed earlier request with the same key,
// or nil when this call now owns the key.
func (b *bookingUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(b.idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, CreateBookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.IsExpiredAt(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, CreateBookingEndpoint, requestHash, expiresAt, now)
		if err != nil {
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if claimed {
			return nil, nil
		}
		return nil, ErrIdempotencyInProgress
	}

	if existing.Endpoint != CreateBookingEndpoint || existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		return existing.ResultBookingID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (b *bookingUseCaseImpl) Quote(ctx context.Context, req reqdto.CreateBookingRequest) (*booking.PriceResult, error) {
	domainReq, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	if err := domainReq.Validate(); err != nil {
		return nil, err
	}

	item, room, err := b.resolveCatalog(ctx, domainReq)
	if err != nil {
		return nil, err
	}

	promo, err := b.resolvePromotion(ctx, b.uow.CommandReads(), domainReq.PromoCode)
	if err != nil {
		return nil, err
	}

	price, err := b.bookingFactory.Quote(item, room, domainReq, promo)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (b *bookingUseCaseImpl) buildBooking(
	ctx context.Context,
	reads shared.CommandReads,
	userID uuid.UUID,
	req booking.Request,
) (*booking.Booking, booking.PriceResult, error) {
	u, err := reads.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.PriceResult{}, errs.Wrapf(booking.ErrItemNotFound, "user %s", userID)
		}
		return nil, booking.PriceResult{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := u.EnsureCanBook(); err != nil {
		return nil, booking.PriceResult{}, errs.Wrapf(booking.ErrItemNotFound, "user %s is not active", userID)
	}

	item, room, err := b.resolveCatalog(ctx, req)
	if err != nil {
		return nil, booking.PriceResult{}, err
	}

	promo, err := b.resolvePromotion(ctx, reads, req.PromoCode)
	if err != nil {
		return nil, booking.PriceResult{}, err
	}

	return b.bookingFactory.CreateBooking(userID, item, room, req, promo)
}

func (b *bookingUseCaseImpl) resolveCatalog(ctx context.Context, req booking.Request) (*catalog.Item, *catalog.Room, error) {
	itemSnap, err := b.catalog.ItemByID(ctx, req.ItemType, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Wrapf(booking.ErrItemNotFound, "%s %s", req.ItemType, req.ItemID)
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	item, err := itemSnap.ToDomain()
	if err != nil {
		return nil, nil, errs.Wrapf(err, "stored %s %s is malformed", req.ItemType, req.ItemID)
	}

	if req.ItemType != catalog.ItemTypeHotel || req.RoomID == nil {
		return item, nil, nil
	}

	roomSnap, err := b.catalog.RoomOfHotel(ctx, *req.RoomID, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Wrapf(booking.ErrItemNotFound, "room %s of hotel %s", *req.RoomID, req.ItemID)
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	room, err := roomSnap.ToDomain()
	if err != nil {
		return nil, nil, errs.Wrapf(err, "stored room %s is malformed", *req.RoomID)
	}
	return item, room, nil
}

// resolvePromotion returns nil for codes that do not resolve; pricing turns that into an advisory.
func (b *bookingUseCaseImpl) resolvePromotion(ctx context.Context, reads shared.CommandReads, rawCode string) (*promotion.Promotion, error) {
	if rawCode == "" {
		return nil, nil
	}
	code, err := promotion.NewCode(rawCode)
	if err != nil {
		return nil, nil
	}

	promo, err := reads.PromotionByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return promo, nil
}

func (b *bookingUseCaseImpl) UpdateStatus(
	ctx context.Context,
	bookingID uuid.UUID,
	change StatusChange,
	actor shared.Actor,
) (*queries.BookingView, error) {
	target, err := booking.NewStatus(change.Target)
	if err != nil {
		return nil, errs.Wrapf(booking.ErrInvalidBookingParameters, "unknown status %q", change.Target)
	}
	now := b.clock.Now()

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().BookingForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := authorizeTransition(entity, target, actor); err != nil {
			return err
		}

		from, err := entity.TransitionTo(target, now)
		if err != nil {
			return err
		}

		return b.persistTransition(ctx, tx, entity, from, &actor.UserID, change.Reason, now)
	})
	if err != nil {
		return nil, err
	}

	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// authorizeTransition lets staff apply any transition. Owners may only cancel,
// so a pending booking waits for staff approval.
func authorizeTransition(entity *booking.Booking, target booking.Status, actor shared.Actor) error {
	if actor.Role.IsStaff() {
		return nil
	}
	if !entity.IsOwnedBy(actor.UserID) {
		return ErrBookingAccess
	}
	if target != booking.StatusCancelled {
		return errs.Wrapf(ErrBookingAccess, "owners cannot move a booking to %s", target)
	}
	return nil
}

func (b *bookingUseCaseImpl) CompleteElapsed(ctx context.Context, limit int) (int, error) {
	now := b.clock.Now()

	var completed int
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		completed = 0

		due, err := tx.Reads().CompletableBookingsForUpdate(ctx, now, limit)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for _, entity := range due {
			from, err := entity.TransitionTo(booking.StatusCompleted, now)
			if err != nil {
				slog.Warn("skipping booking that cannot be completed",
					"booking_id", entity.ID(),
					"status", entity.Status().String(),
					"error", err)
				continue
			}
			if err := b.persistTransition(ctx, tx, entity, from, nil, completionReason, now); err != nil {
				return err
			}
			completed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return completed, nil
}

func (b *bookingUseCaseImpl) persistTransition(
	ctx context.Context,
	tx shared.Tx,
	entity *booking.Booking,
	from booking.Status,
	actorID *uuid.UUID,
	reason string,
	now time.Time,
) error {
	if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), entity, from); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(booking.ErrInvalidStatusTransition, "booking %s changed concurrently", entity.ID())
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Bookings().RecordStatusEvent(ctx, tx.DB(), shared.StatusEvent{
		BookingID: entity.ID(),
		From:      &from,
		To:        entity.Status(),
		ActorID:   actorID,
		Reason:    reason,
		At:        now,
	}); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.createNotificationJob(ctx, tx, TopicBookingStatusChanged, map[string]any{
		"booking_id":  entity.ID(),
		"user_id":     entity.UserID(),
		"from_status": from.String(),
		"status":      entity.Status().String(),
	}); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (b *bookingUseCaseImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	now := b.clock.Now()

	var purged int64
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		purged = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

func (b *bookingUseCaseImpl) createNotificationJob(ctx context.Context, tx shared.Tx, topic string, body map[string]any) error {
	body["type"] = topic
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKind, topic, payload, b.clock.Now())
}

func (b *bookingUseCaseImpl) calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (b *bookingUseCaseImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
