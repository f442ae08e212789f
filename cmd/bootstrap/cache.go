package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/infra/cache"
	"travel-booking/internal/infra/readstore"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCatalogReader,
	),
)

// NewCatalogReader wraps the catalog readstore in a Redis read-through cache when REDIS_ADDR is set.
// An unreachable Redis is logged and tolerated; the cache falls back to the database per lookup.
func NewCatalogReader(lc fx.Lifecycle, cfg config.RedisConfig, store *readstore.CatalogReadStore) shared.CatalogReader {
	if !cfg.Enabled() {
		slog.Info("catalog cache disabled")
		return store
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				slog.Warn("redis ping failed, catalog cache will fall back to the database",
					"addr", cfg.Addr, "error", err.Error())
				return nil
			}
			slog.Info("catalog cache enabled", "addr", cfg.Addr, "ttl", cfg.CatalogTTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewCatalogCache(store, client, cfg.CatalogTTL)
}
