package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nevseti/fincloud-system/internal/api/metrics"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

// ReportHandler serves aggregated financial summaries.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Summary handles GET /summary?branch_id=&limit=.
//
// @Summary      Financial summary for the caller's scope
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        branch_id  query     int  false  "Explicit branch filter"
// @Param        limit      query     int  false  "Recent operations to include (default 10)"
// @Success      200        {object}  ports.SummaryResult
// @Failure      403        {object}  errorResponse
// @Router       /summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	branch, err := queryBranch(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
	}

	timer := prometheus.NewTimer(metrics.SummaryDuration)
	defer timer.ObserveDuration()

	result, err := h.service.Summary(c.Request().Context(), ports.SummaryInput{
		Caller:          claims,
		Bearer:          ctxBearer(c),
		RequestedBranch: branch,
		RecentLimit:     limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
