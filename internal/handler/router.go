package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"affiliate-ledger/internal/handler/api"
	"affiliate-ledger/internal/handler/middleware"
	"affiliate-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Affiliate  *api.AffiliateHandler
	Plan       *api.PlanHandler
	Sale       *api.SaleHandler
	Withdrawal *api.WithdrawalHandler
	Partner    *api.PartnerHandler
	Report     *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin.Group("/affiliates"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Affiliate.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Affiliate.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Affiliate.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Affiliate.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Affiliate.Delete},
			})

			addRoutes(admin.Group("/plans"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Plan.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Plan.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Plan.Delete},
			})

			addRoutes(admin.Group("/sales"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Sale.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Sale.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Sale.Get},
				{Method: http.MethodPost, Path: "/:id/renew", Handler: h.Sale.Renew},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Sale.Cancel},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Sale.ChangeStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Sale.Delete},
			})

			addRoutes(admin.Group("/withdrawals"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Withdrawal.List},
				{Method: http.MethodPost, Path: "/:id/resolve", Handler: h.Withdrawal.Resolve},
			})

			addRoutes(admin.Group("/reports"), []route{
				{Method: http.MethodGet, Path: "/commissions", Handler: h.Report.Commissions},
			})
		}

		// Partner endpoints check ownership per request: admins see any
		// coupon, affiliates only their own.
		partners := apiGroup.Group("/partners")
		partners.Use(authMiddleware.RequireAuth())
		{
			addRoutes(partners, []route{
				{Method: http.MethodGet, Path: "/:coupon/balance", Handler: h.Partner.Balance},
				{Method: http.MethodGet, Path: "/:coupon/sales", Handler: h.Partner.Sales},
				{Method: http.MethodGet, Path: "/:coupon/withdrawals", Handler: h.Partner.Withdrawals},
				{Method: http.MethodPost, Path: "/:coupon/withdrawals", Handler: h.Partner.RequestWithdrawal},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
