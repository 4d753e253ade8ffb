package components

import (
	"loyalty-ledger/internal/infra/readstore"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/infra/uow"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Ledger repositories are bound to a transaction inside the unit of work;
// only the store lookup used by login reads straight from the pool.
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
		// Store
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StoreReadQueries)),
		),
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(commands.StoreReader)),
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
