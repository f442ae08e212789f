package bootstrap

import (
	"travel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	SubConfigs,
)

// SubConfigs narrows Config for constructors that only need one section.
// Tests that supply their own Config reuse it.
var SubConfigs = fx.Provide(
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.JWTConfig { return cfg.JWT },
	func(cfg config.Config) config.RedisConfig { return cfg.Redis },
)
