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

type AffiliateHandler struct {
	cmds commands.AffiliateCommands
	q    queries.AffiliateQueries
}

func NewAffiliateHandler(cmds commands.AffiliateCommands, q queries.AffiliateQueries) *AffiliateHandler {
	return &AffiliateHandler{cmds: cmds, q: q}
}

// @Summary Create affiliate
// @Description Register an affiliate with a unique coupon code
// @Tags affiliates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAffiliateRequest true "Create affiliate request"
// @Success 201 {object} resdto.AffiliateResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /affiliates [post]
func (h *AffiliateHandler) Create(c *gin.Context) {
	var req reqdto.CreateAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateAffiliate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCoupon):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon already registered", nil)
		case errors.Is(err, commands.ErrAffiliateValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid affiliate", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create affiliate failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAffiliateView(view))
}

// @Summary List affiliates
// @Tags affiliates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AffiliateResponse
// @Router /affiliates [get]
func (h *AffiliateHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list affiliates", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAffiliateList(views))
}

// @Summary Get affiliate
// @Tags affiliates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Affiliate ID"
// @Success 200 {object} resdto.AffiliateResponse
// @Failure 404 {object} map[string]string
// @Router /affiliates/{id} [get]
func (h *AffiliateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Affiliate not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAffiliateView(view))
}

// @Summary Update affiliate
// @Tags affiliates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Affiliate ID"
// @Param request body reqdto.UpdateAffiliateRequest true "Update affiliate request"
// @Success 200 {object} resdto.AffiliateResponse
// @Failure 404 {object} map[string]string
// @Router /affiliates/{id} [patch]
func (h *AffiliateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateAffiliateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateAffiliate(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAffiliateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Affiliate not found", nil)
		case errors.Is(err, commands.ErrAffiliateValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid affiliate", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update affiliate failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAffiliateView(view))
}

// @Summary Delete affiliate
// @Description Hard delete. Historical sales and withdrawals keep the coupon string.
// @Tags affiliates
// @Security BearerAuth
// @Param id path string true "Affiliate ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /affiliates/{id} [delete]
func (h *AffiliateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteAffiliate(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrAffiliateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Affiliate not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete affiliate failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
