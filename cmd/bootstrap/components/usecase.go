package components

import (
	"loyalty-ledger/internal/domain/prize"
	"loyalty-ledger/internal/usecase"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		prize.NewRandomCodeGenerator,
		fx.As(new(prize.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCustomerCommands,
		commands.NewLedgerCommands,
		commands.NewCampaignCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewLoyaltyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
