package bootstrap

import (
	"travel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule loads configuration and opens process-wide resources.
var InfraModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
)

// AppModule is everything built on top of the pool and config, and is shared with the e2e harness.
var AppModule = fx.Options(
	JWTModule,
	components.PersistenceModule,
	CacheModule,
	components.UseCaseModule,
	components.HandlerModule,
	SweeperModule,
)

var Module = fx.Options(
	InfraModule,
	AppModule,
)
