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

type PlanHandler struct {
	cmds commands.PlanCommands
	q    queries.PlanQueries
}

func NewPlanHandler(cmds commands.PlanCommands, q queries.PlanQueries) *PlanHandler {
	return &PlanHandler{cmds: cmds, q: q}
}

// @Summary Create plan
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePlanRequest true "Create plan request"
// @Success 201 {object} resdto.PlanResponse
// @Failure 400 {object} map[string]string
// @Router /plans [post]
func (h *PlanHandler) Create(c *gin.Context) {
	var req reqdto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreatePlan(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrPlanValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid plan", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create plan failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPlanView(view))
}

// @Summary List plans
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PlanResponse
// @Router /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list plans", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanList(views))
}

// @Summary Delete plan
// @Tags plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /plans/{id} [delete]
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeletePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrPlanNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete plan failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
