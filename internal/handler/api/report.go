package api

import (
	"net/http"

	resdto "affiliate-ledger/internal/handler/dto/response"
	"affiliate-ledger/internal/handler/httperr"
	"affiliate-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.LedgerQueries
}

func NewReportHandler(q queries.LedgerQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Commission report
// @Description Per-affiliate totals across all current records
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CommissionReportRowResponse
// @Router /reports/commissions [get]
func (h *ReportHandler) Commissions(c *gin.Context) {
	rows, err := h.q.CommissionReport(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommissionReport(rows))
}
