package api

import (
	"errors"
	"net/http"

	"affiliate-ledger/internal/domain/affiliate"
	reqdto "affiliate-ledger/internal/handler/dto/request"
	resdto "affiliate-ledger/internal/handler/dto/response"
	"affiliate-ledger/internal/handler/httperr"
	"affiliate-ledger/internal/handler/middleware"
	"affiliate-ledger/internal/usecase/commands"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errMissingIdentity = errors.New("no identity in request context")
	errNotOwner        = errors.New("identity does not own the coupon")
)

// PartnerHandler serves the affiliate-facing extract: balance, own sales,
// own withdrawals. Admins may read any coupon, an affiliate only their own.
type PartnerHandler struct {
	withdrawalCmds commands.WithdrawalCommands
	ledgerQueries  queries.LedgerQueries
	saleQueries    queries.SaleQueries
	wdQueries      queries.WithdrawalQueries
}

func NewPartnerHandler(
	withdrawalCmds commands.WithdrawalCommands,
	ledgerQueries queries.LedgerQueries,
	saleQueries queries.SaleQueries,
	wdQueries queries.WithdrawalQueries,
) *PartnerHandler {
	return &PartnerHandler{
		withdrawalCmds: withdrawalCmds,
		ledgerQueries:  ledgerQueries,
		saleQueries:    saleQueries,
		wdQueries:      wdQueries,
	}
}

// couponParam normalizes the path coupon and enforces ownership.
func (h *PartnerHandler) couponParam(c *gin.Context) (string, bool) {
	code, err := affiliate.NewCoupon(c.Param("coupon"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon", nil)
		return "", false
	}

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return "", false
	}
	if !identity.IsAdmin() && !identity.Owns(code.String()) {
		httperr.AbortWithError(c, http.StatusForbidden, errNotOwner, "Forbidden", nil)
		return "", false
	}

	return code.String(), true
}

// @Summary Partner balance
// @Description Balance summary for a coupon; available balance clamped at zero
// @Tags partners
// @Produce json
// @Security BearerAuth
// @Param coupon path string true "Coupon code"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /partners/{coupon}/balance [get]
func (h *PartnerHandler) Balance(c *gin.Context) {
	coupon, ok := h.couponParam(c)
	if !ok {
		return
	}

	view, err := h.ledgerQueries.BalanceSummary(c.Request.Context(), coupon)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Affiliate not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary Partner sales
// @Description Sales attributed to the coupon, with expiration labels
// @Tags partners
// @Produce json
// @Security BearerAuth
// @Param coupon path string true "Coupon code"
// @Success 200 {array} resdto.SaleResponse
// @Router /partners/{coupon}/sales [get]
func (h *PartnerHandler) Sales(c *gin.Context) {
	coupon, ok := h.couponParam(c)
	if !ok {
		return
	}

	views, err := h.saleQueries.ListByCoupon(c.Request.Context(), coupon)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list sales", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleList(views))
}

// @Summary Partner withdrawals
// @Tags partners
// @Produce json
// @Security BearerAuth
// @Param coupon path string true "Coupon code"
// @Success 200 {array} resdto.WithdrawalResponse
// @Router /partners/{coupon}/withdrawals [get]
func (h *PartnerHandler) Withdrawals(c *gin.Context) {
	coupon, ok := h.couponParam(c)
	if !ok {
		return
	}

	views, err := h.wdQueries.ListByCoupon(c.Request.Context(), coupon)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list withdrawals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWithdrawalList(views))
}

// @Summary Request withdrawal
// @Description Create a pending withdrawal; the balance is re-validated inside a locked transaction
// @Tags partners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param coupon path string true "Coupon code"
// @Param request body reqdto.CreateWithdrawalRequest true "Withdrawal request"
// @Success 201 {object} resdto.WithdrawalResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /partners/{coupon}/withdrawals [post]
func (h *PartnerHandler) RequestWithdrawal(c *gin.Context) {
	coupon, ok := h.couponParam(c)
	if !ok {
		return
	}
	var req reqdto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.withdrawalCmds.RequestWithdrawal(c.Request.Context(), coupon, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAffiliateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Affiliate not found", nil)
		case errors.Is(err, commands.ErrInsufficientBalance):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient balance", nil)
		case errors.Is(err, commands.ErrWithdrawalValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid withdrawal request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Request withdrawal failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWithdrawalView(view))
}
