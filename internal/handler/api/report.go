package api

import (
	"net/http"

	"lounge-scheduler/internal/domain/report"
	"lounge-scheduler/internal/domain/timewindow"
	reqdto "lounge-scheduler/internal/handler/dto/request"
	resdto "lounge-scheduler/internal/handler/dto/response"
	"lounge-scheduler/internal/handler/httperr"
	"lounge-scheduler/internal/usecase/reporting"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports reporting.Service
}

func NewReportHandler(svc reporting.Service) *ReportHandler {
	return &ReportHandler{reports: svc}
}

// @Summary Report for a named period
// @Description Aggregate bookings starting within previous-month, last-3-months, last-6-months or last-year
// @Tags reports
// @Produce json
// @Param period query string false "Period name" default(previous-month)
// @Success 200 {object} resdto.ReportResponse
// @Failure 400 {object} httperr.Response
// @Router /reports [get]
func (h *ReportHandler) Generate(c *gin.Context) {
	period := c.DefaultQuery("period", string(report.PeriodPreviousMonth))
	m, err := h.reports.Generate(c.Request.Context(), period)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMetrics(m))
}

// @Summary Report for a time range
// @Tags reports
// @Produce json
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end, exclusive (RFC 3339)"
// @Success 200 {object} resdto.ReportResponse
// @Failure 400 {object} httperr.Response
// @Router /reports/range [get]
func (h *ReportHandler) GenerateRange(c *gin.Context) {
	var q reqdto.ReportRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	w, err := timewindow.New(q.From, q.To)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	m, err := h.reports.GenerateRange(c.Request.Context(), w)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMetrics(m))
}
