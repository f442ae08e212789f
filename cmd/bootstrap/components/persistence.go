package components

import (
	"travel-booking/internal/infra/readstore"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/infra/uow"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the UnitOfWork,
// so only read stores and the UnitOfWork itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog: CacheModule decorates it into shared.CatalogReader
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		readstore.NewCatalogReadStore,
		// Promotion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PromotionReadQueries)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(shared.PromotionReader)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
