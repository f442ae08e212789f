package shared

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/promotion"
	"travel-booking/internal/domain/user"
	sqlc "travel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	PromotionByCode(ctx context.Context, code promotion.Code) (*promotion.Promotion, error)
	// BookingForUpdate locks the booking row until the transaction ends.
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// CompletableBookingsForUpdate locks up to limit confirmed bookings whose service ended by now,
	// skipping rows another transaction holds.
	CompletableBookingsForUpdate(ctx context.Context, now time.Time, limit int) ([]*booking.Booking, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// CatalogReader resolves bookable items. Implementations may cache.
type CatalogReader interface {
	ItemByID(ctx context.Context, itemType catalog.ItemType, id uuid.UUID) (*ItemSnapshot, error)
	RoomOfHotel(ctx context.Context, roomID, hotelID uuid.UUID) (*RoomSnapshot, error)
}

type PromotionReader interface {
	ValidForType(ctx context.Context, promotionType promotion.Type, now time.Time) ([]*promotion.Promotion, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus persists b's current status if the stored status still equals expected.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) error
	RecordStatusEvent(ctx context.Context, tx sqlc.DBTX, ev StatusEvent) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether the key was newly claimed.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	// ClaimExpired takes over a key whose previous claim expired before now.
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, responseHash string, bookingID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
