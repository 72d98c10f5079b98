package components

import (
	"affiliate-ledger/internal/domain/sale"
	"affiliate-ledger/internal/pkg/clock"
	"affiliate-ledger/internal/pkg/config"
	"affiliate-ledger/internal/usecase"
	"affiliate-ledger/internal/usecase/commands"
	"affiliate-ledger/internal/usecase/queries"

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
	func(clk clock.Clock, cfg config.LedgerConfig) *sale.Services {
		return &sale.Services{
			Clock: clk,
			Policy: sale.Policy{
				DefaultCommission:   cfg.DefaultCommission,
				DefaultDurationDays: cfg.DefaultDurationDays,
			},
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAffiliateCommands,
		commands.NewPlanCommands,
		commands.NewSaleCommands,
		commands.NewWithdrawalCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAffiliateQueries,
		queries.NewPlanQueries,
		queries.NewSaleQueries,
		queries.NewWithdrawalQueries,
		queries.NewLedgerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
