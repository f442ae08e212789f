package bootstrap

import (
	"log/slog"

	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

// FxEventLogger routes fx lifecycle events through the application logger.
var FxEventLogger = fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: l}
})

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
