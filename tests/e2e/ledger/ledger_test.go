//go:build e2e

package ledger_test

import (
	"fmt"
	"net/http"
	"testing"

	"affiliate-ledger/internal/handler/dto/response"
	"affiliate-ledger/tests/common/authtest"
	"affiliate-ledger/tests/common/builder"
	"affiliate-ledger/tests/common/httptest"
	"affiliate-ledger/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	affiliatesURL         = "/api/affiliates"
	salesURL              = "/api/sales"
	withdrawalsURL        = "/api/withdrawals"
	reportURL             = "/api/reports/commissions"
	partnerBalanceURL     = "/api/partners/%s/balance"
	partnerWithdrawalsURL = "/api/partners/%s/withdrawals"
)

type LedgerSuite struct {
	e2e.SharedSuite
}

func (s *LedgerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerSuite))
}

// ------------------------------------------------------------
// Helpers
// ------------------------------------------------------------

func (s *LedgerSuite) createAffiliate(t *testing.T, adminToken string) response.AffiliateResponse {
	t.Helper()

	reqBody := builder.NewAffiliateBuilder().BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, affiliatesURL, reqBody, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, "Affiliate creation failed: %s", w.Body.String())

	var created response.AffiliateResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotNil(t, created.Contact)
	return created
}

func (s *LedgerSuite) createSale(t *testing.T, adminToken, customerName string) response.SaleResponse {
	t.Helper()

	reqBody := builder.NewSaleBuilder().
		With(func(b *builder.SaleBuilder) { b.CustomerName = customerName }).
		BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, "Sale creation failed: %s", w.Body.String())

	var created response.SaleResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *LedgerSuite) getBalance(t *testing.T, token, coupon string) (response.BalanceResponse, int) {
	t.Helper()

	url := fmt.Sprintf(partnerBalanceURL, coupon)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
	if w.Code != http.StatusOK {
		return response.BalanceResponse{}, w.Code
	}

	var balance response.BalanceResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &balance))
	return balance, w.Code
}

func (s *LedgerSuite) requestWithdrawal(t *testing.T, token, coupon string, amount string) (response.WithdrawalResponse, int) {
	t.Helper()

	reqBody := builder.NewWithdrawalBuilder().
		With(func(b *builder.WithdrawalBuilder) { b.Amount = decimal.RequireFromString(amount) }).
		BuildCreateRequestDTO()
	url := fmt.Sprintf(partnerWithdrawalsURL, coupon)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token)
	if w.Code != http.StatusCreated {
		return response.WithdrawalResponse{}, w.Code
	}

	var created response.WithdrawalResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created, w.Code
}

func (s *LedgerSuite) resolveWithdrawal(t *testing.T, adminToken, id, decision string) response.WithdrawalResponse {
	t.Helper()

	url := withdrawalsURL + "/" + id + "/resolve"
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"decision": decision}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, "Withdrawal resolution failed: %s", w.Body.String())

	var resolved response.WithdrawalResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resolved))
	return resolved
}

// =============================================================================
// TestBalance - Partner balance API tests
// =============================================================================

func (s *LedgerSuite) TestBalance() {
	s.Run("Normal case: balance reflects active attributed sales", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		s.createSale(t, adminToken, "John Doe")
		s.createSale(t, adminToken, "Jane Roe")

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		balance, code := s.getBalance(t, token, "ZEUS10")
		require.Equal(t, http.StatusOK, code)

		expected := response.BalanceResponse{
			Coupon:           "ZEUS10",
			ActiveCustomers:  2,
			GrossCommission:  "30",
			CommittedPayout:  "0",
			AvailableBalance: "30",
		}
		if diff := cmp.Diff(expected, balance); diff != "" {
			t.Errorf("Balance mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: pending withdrawal commits funds", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		s.createSale(t, adminToken, "John Doe")
		s.createSale(t, adminToken, "Jane Roe")

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		created, code := s.requestWithdrawal(t, token, "ZEUS10", "20.00")
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "pending", created.Status)
		require.Nil(t, created.ResolvedAt)
		require.NotZero(t, created.CreatedAt)
		require.NotZero(t, created.UpdatedAt)

		balance, code := s.getBalance(t, token, "ZEUS10")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "20", balance.CommittedPayout)
		require.Equal(t, "10", balance.AvailableBalance)
	})

	s.Run("Normal case: approved withdrawal stays committed", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		s.createSale(t, adminToken, "John Doe")
		s.createSale(t, adminToken, "Jane Roe")

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		created, _ := s.requestWithdrawal(t, token, "ZEUS10", "20.00")

		resolved := s.resolveWithdrawal(t, adminToken, created.ID, "approve")
		require.Equal(t, "paid", resolved.Status)
		require.NotNil(t, resolved.ResolvedAt)

		balance, code := s.getBalance(t, token, "ZEUS10")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "20", balance.CommittedPayout)
		require.Equal(t, "10", balance.AvailableBalance)
	})

	s.Run("Normal case: rejected withdrawal releases funds", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		s.createSale(t, adminToken, "John Doe")
		s.createSale(t, adminToken, "Jane Roe")

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		created, _ := s.requestWithdrawal(t, token, "ZEUS10", "20.00")

		resolved := s.resolveWithdrawal(t, adminToken, created.ID, "reject")
		require.Equal(t, "rejected", resolved.Status)

		balance, code := s.getBalance(t, token, "ZEUS10")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "0", balance.CommittedPayout)
		require.Equal(t, "30", balance.AvailableBalance)
	})

	s.Run("Error case: affiliate cannot read another partner's balance", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		other := builder.NewAffiliateBuilder().
			With(func(b *builder.AffiliateBuilder) {
				b.Name = "Hera Media"
				b.Coupon = "HERA20"
			}).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, affiliatesURL, other, adminToken)
		require.Equal(t, http.StatusCreated, w.Code)

		token := authtest.LoginAffiliate(t, s.Router, "HERA20")
		_, code := s.getBalance(t, token, "ZEUS10")
		require.Equal(t, http.StatusForbidden, code)
	})

	s.Run("Error case: missing token is rejected", func() {
		t := s.T()

		url := fmt.Sprintf(partnerBalanceURL, "ZEUS10")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestWithdrawalLifecycle - Withdrawal request and resolution tests
// =============================================================================

func (s *LedgerSuite) TestWithdrawalLifecycle() {
	s.Run("Error case: withdrawal above available balance fails", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		s.createSale(t, adminToken, "John Doe")

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		_, code := s.requestWithdrawal(t, token, "ZEUS10", "50.00")
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("Error case: resolving twice is rejected", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		s.createSale(t, adminToken, "John Doe")
		s.createSale(t, adminToken, "Jane Roe")

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		created, _ := s.requestWithdrawal(t, token, "ZEUS10", "20.00")
		s.resolveWithdrawal(t, adminToken, created.ID, "approve")

		url := withdrawalsURL + "/" + created.ID + "/resolve"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"decision": "reject"}, adminToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: affiliate cannot resolve withdrawals", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		s.createSale(t, adminToken, "John Doe")
		s.createSale(t, adminToken, "Jane Roe")

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		created, _ := s.requestWithdrawal(t, token, "ZEUS10", "20.00")

		url := withdrawalsURL + "/" + created.ID + "/resolve"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"decision": "approve"}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestSaleLifecycle - Renewal and cancellation against the ledger
// =============================================================================

func (s *LedgerSuite) TestSaleLifecycle() {
	const day = int64(24 * 60 * 60)

	s.Run("Normal case: renewal extends from the current expiry", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		created := s.createSale(t, adminToken, "John Doe")
		require.NotNil(t, created.ExpiresAt)

		url := salesURL + "/" + created.ID + "/renew"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"extension_days": 30}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var renewed response.SaleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &renewed))
		require.Equal(t, "active", renewed.Status)
		require.NotNil(t, renewed.ExpiresAt)
		require.Equal(t, *created.ExpiresAt+30*day, *renewed.ExpiresAt)
	})

	s.Run("Normal case: renewing a cancelled sale reactivates it", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		created := s.createSale(t, adminToken, "John Doe")

		cancelURL := salesURL + "/" + created.ID + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		renewURL := salesURL + "/" + created.ID + "/renew"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, renewURL, map[string]any{"extension_days": 30}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var renewed response.SaleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &renewed))
		require.Equal(t, "active", renewed.Status)
	})

	s.Run("Normal case: cancellation removes the commission from the balance", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		first := s.createSale(t, adminToken, "John Doe")
		s.createSale(t, adminToken, "Jane Roe")

		url := salesURL + "/" + first.ID + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		balance, code := s.getBalance(t, token, "ZEUS10")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, 1, balance.ActiveCustomers)
		require.Equal(t, "15", balance.GrossCommission)
	})

	s.Run("Normal case: unattributed sales never touch a balance", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)

		reqBody := builder.NewSaleBuilder().
			With(func(b *builder.SaleBuilder) { b.Coupon = "" }).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.SaleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Nil(t, created.Coupon)
		require.Equal(t, "0", created.Commission)

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		balance, code := s.getBalance(t, token, "ZEUS10")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, 0, balance.ActiveCustomers)
		require.Equal(t, "0", balance.GrossCommission)
	})
}

// =============================================================================
// TestCommissionReport - Admin reporting tests
// =============================================================================

func (s *LedgerSuite) TestCommissionReport() {
	s.Run("Normal case: report aggregates balances per affiliate", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)
		s.createSale(t, adminToken, "John Doe")
		s.createSale(t, adminToken, "Jane Roe")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reportURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rows []response.CommissionReportRowResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rows))
		require.Len(t, rows, 1)
		require.Equal(t, "ZEUS10", rows[0].Coupon)
		require.Equal(t, 2, rows[0].ActiveCustomers)
		require.Equal(t, "30", rows[0].GrossCommission)
	})

	s.Run("Error case: affiliates cannot read the report", func() {
		t := s.T()

		adminToken := authtest.LoginAdmin(t, s.Router)
		s.createAffiliate(t, adminToken)

		token := authtest.LoginAffiliate(t, s.Router, "ZEUS10")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reportURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
