package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, c *api.CatalogHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Catalog: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)
