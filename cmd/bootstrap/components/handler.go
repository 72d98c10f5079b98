package components

import (
	"affiliate-ledger/internal/handler"
	"affiliate-ledger/internal/handler/api"
	"affiliate-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAffiliateHandler,
		api.NewPlanHandler,
		api.NewSaleHandler,
		api.NewWithdrawalHandler,
		api.NewPartnerHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	affiliate *api.AffiliateHandler,
	plan *api.PlanHandler,
	sale *api.SaleHandler,
	withdrawal *api.WithdrawalHandler,
	partner *api.PartnerHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Affiliate:  affiliate,
		Plan:       plan,
		Sale:       sale,
		Withdrawal: withdrawal,
		Partner:    partner,
		Report:     report,
	}
}
