package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/dto"
	"github.com/opms-dev/opms_backend/internal/middleware"
)

// billingHandler handles the weekly billing summary and branch loans.
type billingHandler struct {
	analyticsService portssvc.AnalyticsService
	loanService      portssvc.LoanService
}

// registerBillingRoutes registers billing and loan routes under a branch.
func registerBillingRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService, loanService portssvc.LoanService) {
	h := &billingHandler{analyticsService: analyticsService, loanService: loanService}

	billings := rg.Group("/billings")
	{
		billings.GET("/summary", h.getWeeklyBillingSummary)
	}

	loans := rg.Group("/loans")
	{
		loans.POST("", h.addLoan)
		loans.GET("", h.listLoans)
	}
}

// getWeeklyBillingSummary godoc
// @Summary Get the weekly billing summary
// @Description Totals check amounts, EWT and countered checks of folders paid within one ISO week, plus loan repayments; defaults to the current week
// @Tags billing
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   year query int false "ISO year"
// @Param   week query int false "ISO week (1-53)"
// @Success 200 {object} dto.WeeklyBillingSummaryResponse
// @Failure 400 {object} map[string]string "Invalid year or week"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /branches/{branchID}/billings/summary [get]
func (h *billingHandler) getWeeklyBillingSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	branch := c.Param("branchID")

	nowYear, nowWeek := time.Now().UTC().ISOWeek()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(nowYear)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
		return
	}
	week, err := strconv.Atoi(c.DefaultQuery("week", strconv.Itoa(nowWeek)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a number"})
		return
	}

	summary, err := h.analyticsService.GetWeeklyBillingSummary(c.Request.Context(), userID, branch, year, week)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build weekly billing summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToWeeklyBillingSummaryResponse(summary))
}

// addLoan godoc
// @Summary Record a loan
// @Description Records a bank loan against the branch
// @Tags billing
// @Accept  json
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   loan body dto.AddLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /branches/{branchID}/loans [post]
func (h *billingHandler) addLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	branch := c.Param("branchID")

	loan, err := h.loanService.AddLoan(c.Request.Context(), userID, branch, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record loan")
		return
	}

	logger.Info("Loan recorded", slog.String("loan_id", loan.LoanID), slog.String("branch", branch))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans
// @Description Lists non-archived loans for the branch
// @Tags billing
// @Produce  json
// @Param   branchID path string true "Branch"
// @Success 200 {array} dto.LoanResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /branches/{branchID}/loans [get]
func (h *billingHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	branch := c.Param("branchID")

	loans, err := h.loanService.ListLoans(c.Request.Context(), userID, branch)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}
