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

type SaleHandler struct {
	cmds commands.SaleCommands
	q    queries.SaleQueries
}

func NewSaleHandler(cmds commands.SaleCommands, q queries.SaleQueries) *SaleHandler {
	return &SaleHandler{cmds: cmds, q: q}
}

// @Summary Create sale
// @Description Record a subscription sale, optionally attributed to an affiliate coupon
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSaleRequest true "Create sale request"
// @Success 201 {object} resdto.SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req reqdto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateSale(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPlanNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
		case errors.Is(err, commands.ErrSaleValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid sale", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create sale failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSaleView(view))
}

// @Summary List sales
// @Description List sales with optional coupon and status filters
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param coupon query string false "Filter by coupon"
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.SaleResponse
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	var filter queries.SaleListFilter
	if coupon := c.Query("coupon"); coupon != "" {
		filter.Coupon = &coupon
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list sales", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleList(views))
}

// @Summary Get sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} resdto.SaleResponse
// @Failure 404 {object} map[string]string
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Sale not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleView(view))
}

// @Summary Renew sale
// @Description Extend the subscription from max(expiry, now) and reactivate
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Param request body reqdto.RenewSaleRequest true "Renew request"
// @Success 200 {object} resdto.SaleResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /sales/{id}/renew [post]
func (h *SaleHandler) Renew(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RenewSaleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.RenewSale(c.Request.Context(), id, req)
	if err != nil {
		h.abortSaleMutation(c, err, "Renew sale failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleView(view))
}

// @Summary Cancel sale
// @Description Exclude the sale's commission from the balance going forward
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} resdto.SaleResponse
// @Failure 404 {object} map[string]string
// @Router /sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.cmds.CancelSale(c.Request.Context(), id)
	if err != nil {
		h.abortSaleMutation(c, err, "Cancel sale failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleView(view))
}

// @Summary Change sale status
// @Description Manual status edit (e.g. mark a sale pending)
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Param request body reqdto.UpdateSaleStatusRequest true "Status request"
// @Success 200 {object} resdto.SaleResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /sales/{id}/status [patch]
func (h *SaleHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateSaleStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.ChangeSaleStatus(c.Request.Context(), id, req)
	if err != nil {
		h.abortSaleMutation(c, err, "Change sale status failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleView(view))
}

// @Summary Delete sale
// @Tags sales
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /sales/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteSale(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrSaleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Sale not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete sale failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SaleHandler) abortSaleMutation(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrSaleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Sale not found", nil)
	case errors.Is(err, commands.ErrSaleValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid sale operation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
