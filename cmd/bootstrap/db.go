package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects eagerly so a bad DSN fails startup instead of the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("database pool ready",
				"host", cfg.DB.Host,
				"database", cfg.DB.DBName,
				"max_conns", pool.Config().MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			slog.Info("closing database pool",
				"total_conns", stat.TotalConns(),
				"acquired_conns", stat.AcquiredConns(),
				"acquire_count", stat.AcquireCount())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
