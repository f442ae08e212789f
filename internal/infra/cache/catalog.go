package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:"

// Client is the part of *redis.Client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache is a read-through cache in front of a CatalogReader.
// Redis failures never fail a lookup: the cache is bypassed and the miss is served from next.
// Lookup errors, not-found included, are not cached.
type CatalogCache struct {
	next   shared.CatalogReader
	client Client
	ttl    time.Duration
}

func NewCatalogCache(next shared.CatalogReader, client Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func (c *CatalogCache) ItemByID(ctx context.Context, itemType catalog.ItemType, id uuid.UUID) (*shared.ItemSnapshot, error) {
	return readThrough(ctx, c, ItemKey(itemType, id), func() (*shared.ItemSnapshot, error) {
		return c.next.ItemByID(ctx, itemType, id)
	})
}

func (c *CatalogCache) RoomOfHotel(ctx context.Context, roomID, hotelID uuid.UUID) (*shared.RoomSnapshot, error) {
	return readThrough(ctx, c, RoomKey(hotelID, roomID), func() (*shared.RoomSnapshot, error) {
		return c.next.RoomOfHotel(ctx, roomID, hotelID)
	})
}

func ItemKey(itemType catalog.ItemType, id uuid.UUID) string {
	return keyPrefix + "item:" + itemType.String() + ":" + id.String()
}

func RoomKey(hotelID, roomID uuid.UUID) string {
	return keyPrefix + "room:" + hotelID.String() + ":" + roomID.String()
}

func readThrough[T any](ctx context.Context, c *CatalogCache, key string, fetch func() (*T, error)) (*T, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached T
		if uerr := json.Unmarshal(raw, &cached); uerr == nil {
			return &cached, nil
		}
		slog.Warn("discarding undecodable cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("catalog cache unavailable, reading through", "key", key, "error", err.Error())
	}

	value, err := fetch()
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		slog.Warn("failed to encode cache entry", "key", key, "error", err.Error())
		return value, nil
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		slog.Warn("failed to populate catalog cache", "key", key, "error", err.Error())
	}

	return value, nil
}
