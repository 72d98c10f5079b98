package components

import (
	"affiliate-ledger/internal/infra/readstore"
	repo_impl "affiliate-ledger/internal/infra/repository"
	"affiliate-ledger/internal/usecase/commands"
	"affiliate-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			repo_impl.NewAffiliateRepository,
			fx.As(new(commands.AffiliateRepository)),
		),
		fx.Annotate(
			repo_impl.NewPlanRepository,
			fx.As(new(commands.PlanRepository)),
		),
		fx.Annotate(
			repo_impl.NewSaleRepository,
			fx.As(new(commands.SaleRepository)),
		),
		fx.Annotate(
			repo_impl.NewWithdrawalRepository,
			fx.As(new(commands.WithdrawalRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewAffiliateReadStore,
			fx.As(new(queries.AffiliateViewRepo)),
		),
		fx.Annotate(
			readstore.NewPlanReadStore,
			fx.As(new(queries.PlanViewRepo)),
		),
		fx.Annotate(
			readstore.NewSaleReadStore,
			fx.As(new(queries.SaleViewRepo)),
		),
		fx.Annotate(
			readstore.NewWithdrawalReadStore,
			fx.As(new(queries.WithdrawalViewRepo)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerRecordRepo)),
		),
	),
)
