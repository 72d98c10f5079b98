//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"affiliate-ledger/internal/handler/api"
	"affiliate-ledger/internal/usecase"
	"affiliate-ledger/internal/usecase/commands"
	"affiliate-ledger/internal/usecase/queries"
	"affiliate-ledger/tests/common/httptest"
	commandsmock "affiliate-ledger/tests/mock/commands"
	queriesmock "affiliate-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PartnerHandlerTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockWithdrawalCmds *commandsmock.MockWithdrawalCommands
	mockLedgerQueries  *queriesmock.MockLedgerQueries
	mockSaleQueries    *queriesmock.MockSaleQueries
	mockWdQueries      *queriesmock.MockWithdrawalQueries
	handler            *api.PartnerHandler
}

func (s *PartnerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWithdrawalCmds = commandsmock.NewMockWithdrawalCommands(s.mockCtrl)
	s.mockLedgerQueries = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.mockSaleQueries = queriesmock.NewMockSaleQueries(s.mockCtrl)
	s.mockWdQueries = queriesmock.NewMockWithdrawalQueries(s.mockCtrl)
	s.handler = api.NewPartnerHandler(s.mockWithdrawalCmds, s.mockLedgerQueries, s.mockSaleQueries, s.mockWdQueries)
}

func (s *PartnerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPartnerHandlerSuite(t *testing.T) {
	suite.Run(t, new(PartnerHandlerTestSuite))
}

// routerAs builds a router that injects the given identity, mimicking what
// the auth middleware does after token validation.
func (s *PartnerHandlerTestSuite) routerAs(identity *usecase.Identity) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("auth_identity", *identity)
		c.Next()
	})

	router.GET("/partners/:coupon/balance", s.handler.Balance)
	router.GET("/partners/:coupon/sales", s.handler.Sales)
	router.GET("/partners/:coupon/withdrawals", s.handler.Withdrawals)
	router.POST("/partners/:coupon/withdrawals", s.handler.RequestWithdrawal)
	return router
}

func affiliateIdentity(coupon string) *usecase.Identity {
	return &usecase.Identity{Role: usecase.RoleAffiliate, Coupon: coupon}
}

func adminIdentity() *usecase.Identity {
	return &usecase.Identity{Role: usecase.RoleAdmin}
}

func balanceView() *queries.BalanceView {
	return &queries.BalanceView{
		Coupon:           "ZEUS10",
		ActiveCustomers:  2,
		GrossCommission:  decimal.RequireFromString("30.00"),
		CommittedPayout:  decimal.RequireFromString("10.00"),
		AvailableBalance: decimal.RequireFromString("20.00"),
	}
}

func withdrawalView(status string) *queries.WithdrawalView {
	return &queries.WithdrawalView{
		ID:          uuid.New(),
		Coupon:      "ZEUS10",
		Amount:      decimal.RequireFromString("20.00"),
		PayoutKey:   "usdt:TAbcdef1234567890",
		Status:      status,
		RequestedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

// ================================================================================
// TestBalance
// ================================================================================

func (s *PartnerHandlerTestSuite) TestBalance() {
	url := "/partners/ZEUS10/balance"

	s.Run("success: owner reads own balance", func() {
		router := s.routerAs(affiliateIdentity("ZEUS10"))
		s.mockLedgerQueries.EXPECT().BalanceSummary(gomock.Any(), "ZEUS10").
			Return(balanceView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("20", body["available_balance"])
		s.Equal(float64(2), body["active_customers"])
	})

	s.Run("success: admin reads any coupon", func() {
		router := s.routerAs(adminIdentity())
		s.mockLedgerQueries.EXPECT().BalanceSummary(gomock.Any(), "ZEUS10").
			Return(balanceView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: coupon in the path is normalized", func() {
		router := s.routerAs(affiliateIdentity("ZEUS10"))
		s.mockLedgerQueries.EXPECT().BalanceSummary(gomock.Any(), "ZEUS10").
			Return(balanceView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/partners/zeus10/balance", nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 when affiliate reads another coupon", func() {
		router := s.routerAs(affiliateIdentity("OTHER1"))

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 400 on malformed coupon", func() {
		router := s.routerAs(adminIdentity())

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/partners/z!/balance", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon")
	})

	s.Run("error: 404 when affiliate unknown", func() {
		router := s.routerAs(adminIdentity())
		s.mockLedgerQueries.EXPECT().BalanceSummary(gomock.Any(), "GHOST1").
			Return(nil, commands.ErrAffiliateNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/partners/GHOST1/balance", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Affiliate not found")
	})
}

// ================================================================================
// TestSales
// ================================================================================

func (s *PartnerHandlerTestSuite) TestSales() {
	s.Run("success: owner lists own sales", func() {
		router := s.routerAs(affiliateIdentity("ZEUS10"))
		s.mockSaleQueries.EXPECT().ListByCoupon(gomock.Any(), "ZEUS10").
			Return([]*queries.SaleView{saleView("active")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/partners/ZEUS10/sales", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 403 for foreign coupon", func() {
		router := s.routerAs(affiliateIdentity("OTHER1"))

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/partners/ZEUS10/sales", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestRequestWithdrawal
// ================================================================================

func (s *PartnerHandlerTestSuite) TestRequestWithdrawal() {
	url := "/partners/ZEUS10/withdrawals"
	reqBody := map[string]any{"amount": "20.00"}

	s.Run("success: returns 201 with the pending request", func() {
		router := s.routerAs(affiliateIdentity("ZEUS10"))
		s.mockWithdrawalCmds.EXPECT().RequestWithdrawal(gomock.Any(), "ZEUS10", gomock.Any()).
			Return(withdrawalView("pending"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body["status"])
	})

	s.Run("error: 422 when balance insufficient", func() {
		router := s.routerAs(affiliateIdentity("ZEUS10"))
		s.mockWithdrawalCmds.EXPECT().RequestWithdrawal(gomock.Any(), "ZEUS10", gomock.Any()).
			Return(nil, commands.ErrInsufficientBalance).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Insufficient balance")
	})

	s.Run("error: 404 when affiliate unknown", func() {
		router := s.routerAs(adminIdentity())
		s.mockWithdrawalCmds.EXPECT().RequestWithdrawal(gomock.Any(), "GHOST1", gomock.Any()).
			Return(nil, commands.ErrAffiliateNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/partners/GHOST1/withdrawals", reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Affiliate not found")
	})

	s.Run("error: 403 when requesting for another coupon", func() {
		router := s.routerAs(affiliateIdentity("OTHER1"))

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 400 when amount missing", func() {
		router := s.routerAs(affiliateIdentity("ZEUS10"))

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, url, map[string]any{}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
