package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/dto"
	"github.com/opms-dev/opms_backend/internal/middleware"
)

// analyticsHandler handles the earnings dashboard endpoints.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsService
}

// registerAnalyticsRoutes registers analytics routes under a branch.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService) {
	h := &analyticsHandler{analyticsService: analyticsService}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.getAnalyticsSummary)
	}
}

// getAnalyticsSummary godoc
// @Summary Get the earnings summary
// @Description Yearly earnings chart with a 4-week drill-down into one month; defaults to the current year and month
// @Tags analytics
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   year query int false "Year"
// @Param   month query int false "Month (1-12)"
// @Success 200 {object} dto.AnalyticsSummaryResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /branches/{branchID}/analytics/summary [get]
func (h *analyticsHandler) getAnalyticsSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	branch := c.Param("branchID")

	now := time.Now().UTC()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be a number"})
		return
	}

	summary, err := h.analyticsService.GetAnalyticsSummary(c.Request.Context(), userID, branch, year, month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build analytics summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsSummaryResponse(summary))
}
