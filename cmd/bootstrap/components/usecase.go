package components

import (
	"giftsafer/internal/pkg/clock"
	"giftsafer/internal/pkg/config"
	"giftsafer/internal/usecase"
	"giftsafer/internal/usecase/commands"
	"giftsafer/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.AdminConfig {
		return cfg.Admin
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckUseCase,
		commands.NewInquiryUseCase,
		commands.NewAuthUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckLogQueries,
		queries.NewUsedCodeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
