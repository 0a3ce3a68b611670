package components

import (
	"giftsafer/internal/infra/readstore"
	"giftsafer/internal/infra/repository"
	sqlc "giftsafer/internal/infra/sqlc/generated"
	"giftsafer/internal/usecase/commands"
	"giftsafer/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// Used code ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UsedCodeWriteQueries)),
		),
		fx.Annotate(
			repository.NewUsedCodeRepository,
			fx.As(new(commands.UsedCodeRepository)),
		),
		// Check log
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CheckLogWriteQueries)),
		),
		fx.Annotate(
			repository.NewCheckLogRepository,
			fx.As(new(commands.CheckLogRepository)),
		),
		// Read-side repositories for queries
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CheckLogReadQueries)),
		),
		fx.Annotate(
			readstore.NewCheckLogReadStore,
			fx.As(new(queries.CheckLogReadStore)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UsedCodeReadQueries)),
		),
		fx.Annotate(
			readstore.NewUsedCodeReadStore,
			fx.As(new(queries.UsedCodeReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
