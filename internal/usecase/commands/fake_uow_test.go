//go:build unit

package commands_test

import (
	"context"
	"maps"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/promotion"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is an in-memory database. Within rolls back every map and slice when fn fails.
type memStore struct {
	users    map[uuid.UUID]*user.User
	promos   map[promotion.Code]*promotion.Promotion
	items    map[uuid.UUID]*shared.ItemSnapshot
	rooms    map[uuid.UUID]*shared.RoomSnapshot
	bookings map[uuid.UUID]*booking.Booking
	keys     map[uuid.UUID]shared.IdempotencyRecord
	events   []shared.StatusEvent
	jobs     []notificationJob

	createErr error
	// staleStatus makes UpdateStatus behave as if another transaction changed the row first.
	staleStatus bool
}

type notificationJob struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uuid.UUID]*user.User{},
		promos:   map[promotion.Code]*promotion.Promotion{},
		items:    map[uuid.UUID]*shared.ItemSnapshot{},
		rooms:    map[uuid.UUID]*shared.RoomSnapshot{},
		bookings: map[uuid.UUID]*booking.Booking{},
		keys:     map[uuid.UUID]shared.IdempotencyRecord{},
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		Item:            b.Item(),
		BookingDate:     b.BookingDate(),
		Stay:            b.Stay(),
		Guests:          b.Guests(),
		SpecialRequests: b.SpecialRequests().String(),
		PromotionID:     b.PromotionID(),
		BasePrice:       b.BasePrice(),
		Discount:        b.Discount(),
		TotalPrice:      b.TotalPrice(),
		Status:          b.Status(),
		ServiceEndsAt:   b.ServiceEndsAt(),
		UpdatedAt:       b.UpdatedAt(),
	})
}

// fakeUoW

type fakeUoW struct {
	store    *memStore
	commits  int
	rollback int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s := u.store
	bookings := maps.Clone(s.bookings)
	keys := maps.Clone(s.keys)
	events, jobs := len(s.events), len(s.jobs)

	if err := fn(ctx, &fakeTx{store: s}); err != nil {
		s.bookings, s.keys = bookings, keys
		s.events, s.jobs = s.events[:events], s.jobs[:jobs]
		u.rollback++
		return err
	}
	u.commits++
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *memStore
}

func (t *fakeTx) Bookings() shared.BookingRepository           { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository    { return &fakeIdempotencyRepo{store: t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotificationRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads                   { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() sqlc.DBTX                                { return nil }

// fakeReads

type fakeReads struct {
	store *memStore
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return u, nil
}

func (r *fakeReads) PromotionByCode(_ context.Context, code promotion.Code) (*promotion.Promotion, error) {
	p, ok := r.store.promos[code]
	if !ok {
		return nil, notFound("promotion not found")
	}
	return p, nil
}

func (r *fakeReads) BookingForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return cloneBooking(b), nil
}

func (r *fakeReads) CompletableBookingsForUpdate(_ context.Context, now time.Time, limit int) ([]*booking.Booking, error) {
	var due []*booking.Booking
	for _, b := range r.store.bookings {
		if len(due) == limit {
			break
		}
		if b.IsCompletableAt(now) {
			due = append(due, cloneBooking(b))
		}
	}
	return due, nil
}

func (r *fakeReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.store.keys[key]
	if !ok || rec.UserID != userID {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

// fakeBookingRepo

type fakeBookingRepo struct {
	store *memStore
}

func (r *fakeBookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.store.createErr != nil {
		return uuid.Nil, r.store.createErr
	}
	r.store.bookings[b.ID()] = cloneBooking(b)
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking, expected booking.Status) error {
	stored, ok := r.store.bookings[b.ID()]
	if !ok || stored.Status() != expected || r.store.staleStatus {
		return notFound("booking not found in expected status")
	}
	r.store.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *fakeBookingRepo) RecordStatusEvent(_ context.Context, _ sqlc.DBTX, ev shared.StatusEvent) error {
	r.store.events = append(r.store.events, ev)
	return nil
}

// fakeIdempotencyRepo

type fakeIdempotencyRepo struct {
	store *memStore
}

func (r *fakeIdempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	if _, exists := r.store.keys[key]; exists {
		return false, nil
	}
	r.store.keys[key] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *fakeIdempotencyRepo) ClaimExpired(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error) {
	rec, ok := r.store.keys[key]
	if !ok || rec.UserID != userID || !rec.IsExpiredAt(now) {
		return false, nil
	}
	r.store.keys[key] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *fakeIdempotencyRepo) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, bookingID uuid.UUID) error {
	rec, ok := r.store.keys[key]
	if !ok || rec.UserID != userID || rec.Status != shared.IdempotencyStatusProcessing {
		return notFound("idempotency key not in processing state")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultBookingID = &bookingID
	r.store.keys[key] = rec
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	var n int64
	for key, rec := range r.store.keys {
		if rec.IsExpiredAt(now) {
			delete(r.store.keys, key)
			n++
		}
	}
	return n, nil
}

// fakeNotificationRepo

type fakeNotificationRepo struct {
	store *memStore
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.store.jobs = append(r.store.jobs, notificationJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

// fakeCatalog

type fakeCatalog struct {
	store *memStore
}

func (c *fakeCatalog) ItemByID(_ context.Context, itemType catalog.ItemType, id uuid.UUID) (*shared.ItemSnapshot, error) {
	s, ok := c.store.items[id]
	if !ok || s.Type != itemType.String() {
		return nil, notFound(itemType.String() + " not found")
	}
	return s, nil
}

func (c *fakeCatalog) RoomOfHotel(_ context.Context, roomID, hotelID uuid.UUID) (*shared.RoomSnapshot, error) {
	r, ok := c.store.rooms[roomID]
	if !ok || r.HotelID != hotelID {
		return nil, notFound("room not found")
	}
	return r, nil
}

// fakeBookingQueries projects stored bookings into views.

type fakeBookingQueries struct {
	store *memStore
}

func (q *fakeBookingQueries) GetByID(ctx context.Context, _ shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	return q.GetByIDSystem(ctx, id)
}

func (q *fakeBookingQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, ok := q.store.bookings[id]
	if !ok {
		return nil, queries.ErrBookingNotFound
	}
	return &queries.BookingView{
		ID:              b.ID(),
		UserID:          b.UserID(),
		BookingType:     b.Type().String(),
		ItemID:          b.Item().ID(),
		RoomID:          b.Item().RoomID(),
		BookingDate:     b.BookingDate(),
		CheckInDate:     b.Stay().CheckIn(),
		CheckOutDate:    b.Stay().CheckOut(),
		NumberOfGuests:  b.Guests(),
		SpecialRequests: b.SpecialRequests().String(),
		PromotionID:     b.PromotionID(),
		BasePriceCents:  b.BasePrice().Cents(),
		DiscountCents:   b.Discount().Cents(),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status().String(),
		ServiceEndsAt:   b.ServiceEndsAt(),
		UpdatedAt:       b.UpdatedAt(),
	}, nil
}

func (q *fakeBookingQueries) ListByUser(context.Context, uuid.UUID, *queries.Cursor, int) ([]*queries.BookingListItem, *queries.Cursor, error) {
	return nil, nil, nil
}
