package api

import (
	"errors"
	"net/http"

	reqdto "affiliate-ledger/internal/handler/dto/request"
	resdto "affiliate-ledger/internal/handler/dto/response"
	"affiliate-ledger/internal/handler/httperr"
	"affiliate-ledger/internal/usecase/commands"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WithdrawalHandler covers the admin side: listing all requests and
// resolving them. Affiliates go through the partner endpoints.
type WithdrawalHandler struct {
	cmds commands.WithdrawalCommands
	q    queries.WithdrawalQueries
}

func NewWithdrawalHandler(cmds commands.WithdrawalCommands, q queries.WithdrawalQueries) *WithdrawalHandler {
	return &WithdrawalHandler{cmds: cmds, q: q}
}

// @Summary List withdrawals
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.WithdrawalResponse
// @Router /withdrawals [get]
func (h *WithdrawalHandler) List(c *gin.Context) {
	var filter queries.WithdrawalListFilter
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list withdrawals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWithdrawalList(views))
}

// @Summary Resolve withdrawal
// @Description Approve (pay) or reject a pending withdrawal request
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Withdrawal ID"
// @Param request body reqdto.ResolveWithdrawalRequest true "Resolution decision"
// @Success 200 {object} resdto.WithdrawalResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /withdrawals/{id}/resolve [post]
func (h *WithdrawalHandler) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ResolveWithdrawalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.ResolveWithdrawal(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWithdrawalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Withdrawal not found", nil)
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Withdrawal already resolved", nil)
		case errors.Is(err, commands.ErrWithdrawalValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resolution decision", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Resolve withdrawal failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromWithdrawalView(view))
}
