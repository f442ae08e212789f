package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartCompletionSweeper),
)

// StartCompletionSweeper periodically completes bookings whose service has ended
// and purges expired idempotency keys. A zero interval leaves it off.
func StartCompletionSweeper(lc fx.Lifecycle, cfg config.Config, cmds commands.BookingCommands) {
	interval := cfg.Booking.CompletionInterval
	if interval <= 0 {
		slog.Info("completion sweeper disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				runSweeper(ctx, interval, cfg.Booking.CompletionBatchSize, cmds)
			}()
			slog.Info("completion sweeper started", "interval", interval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func runSweeper(ctx context.Context, interval time.Duration, batch int, cmds commands.BookingCommands) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepOnce(ctx, batch, cmds)
		}
	}
}

func sweepOnce(ctx context.Context, batch int, cmds commands.BookingCommands) {
	completed, err := cmds.CompleteElapsed(ctx, batch)
	if err != nil {
		slog.Error("completing elapsed bookings failed", "error", err.Error())
	} else if completed > 0 {
		slog.Info("completed elapsed bookings", "count", completed)
	}

	purged, err := cmds.PurgeExpiredIdempotencyKeys(ctx)
	if err != nil {
		slog.Error("purging expired idempotency keys failed", "error", err.Error())
	} else if purged > 0 {
		slog.Info("purged expired idempotency keys", "count", purged)
	}
}
