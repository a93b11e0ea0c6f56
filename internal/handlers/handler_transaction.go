package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/dto"
	"github.com/opms-dev/opms_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for folders and child checks.
type transactionHandler struct {
	txnService   portssvc.TransactionService
	reconService portssvc.ReconciliationService
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionService, rs portssvc.ReconciliationService) *transactionHandler {
	return &transactionHandler{
		txnService:   ts,
		reconService: rs,
	}
}

// registerTransactionRoutes registers folder and child check routes under a branch.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionService, reconService portssvc.ReconciliationService) {
	h := newTransactionHandler(txnService, reconService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createFolder)
		transactions.GET("", h.listFolders)
		transactions.GET("/:transactionID", h.getFolder)
		transactions.PUT("/:transactionID", h.updateFolder)
		transactions.DELETE("/:transactionID", h.archiveTransaction)
		transactions.POST("/:transactionID/children", h.createChild)
		transactions.PUT("/:transactionID/children/:childID", h.updateChild)
		transactions.GET("/:transactionID/totals", h.getFolderTotals)
		transactions.POST("/:transactionID/pay", h.payFolder)
		transactions.POST("/:transactionID/decline", h.declineFolder)
	}
}

// respondServiceError translates service errors to HTTP responses. Unknown
// errors get a generic 500; the detail stays in the logs.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyPaid), errors.Is(err, apperrors.ErrIncompleteChildren):
		logger.Warn("Conflicting folder state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// requireUserID pulls the authenticated user out of the request context.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// createFolder godoc
// @Summary Create a transaction folder
// @Description Creates a pending folder for the branch; amounts come from child checks later
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   folder body dto.CreateFolderRequest true "Folder details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create folder"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions [post]
func (h *transactionHandler) createFolder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFolder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	branch := c.Param("branchID")

	folder, err := h.txnService.CreateFolder(c.Request.Context(), userID, branch, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create folder")
		return
	}

	logger.Info("Folder created", slog.String("transaction_id", folder.TransactionID), slog.String("branch", branch))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(folder))
}

// listFolders godoc
// @Summary List folders by status
// @Description Lists the branch's non-archived folders filtered by status
// @Tags transactions
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   status query string true "PENDING, PAID or DECLINED"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Missing or invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions [get]
func (h *transactionHandler) listFolders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListFolders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	branch := c.Param("branchID")
	status := domain.TransactionStatus(strings.ToUpper(req.Status))

	folders, err := h.txnService.ListFoldersByStatus(c.Request.Context(), userID, branch, status)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list folders")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(folders))
}

// getFolder godoc
// @Summary Get a folder
// @Description Retrieves a folder, optionally with its child checks
// @Tags transactions
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   transactionID path string true "Folder ID"
// @Param   includeChildren query bool false "Include child checks"
// @Success 200 {object} dto.FolderDetailResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Folder not found"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions/{transactionID} [get]
func (h *transactionHandler) getFolder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")
	includeChildren, _ := strconv.ParseBool(c.DefaultQuery("includeChildren", "false"))

	folder, children, err := h.txnService.GetFolder(c.Request.Context(), userID, transactionID, includeChildren)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve folder")
		return
	}

	resp := dto.FolderDetailResponse{Folder: dto.ToTransactionResponse(folder)}
	if includeChildren {
		resp.Children = dto.ToTransactionResponses(children)
	}
	c.JSON(http.StatusOK, resp)
}

// updateFolder godoc
// @Summary Update folder header fields
// @Description Merges name, dates and notes; amounts and status are untouchable here
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   transactionID path string true "Folder ID"
// @Param   folder body dto.UpdateFolderRequest true "Fields to merge"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Folder not found"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions/{transactionID} [put]
func (h *transactionHandler) updateFolder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFolder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")

	folder, err := h.txnService.UpdateFolder(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update folder")
		return
	}

	logger.Info("Folder updated", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(folder))
}

// createChild godoc
// @Summary Add a child check to a folder
// @Description Records an issued check under a pending folder; countered check and EWT are derived from the deductions
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   transactionID path string true "Folder ID"
// @Param   child body dto.CreateChildRequest true "Check details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Folder not found"
// @Failure 409 {object} map[string]string "Folder already settled"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions/{transactionID}/children [post]
func (h *transactionHandler) createChild(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChild", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	branch := c.Param("branchID")
	folderID := c.Param("transactionID")

	child, err := h.txnService.CreateChild(c.Request.Context(), userID, branch, folderID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create child check")
		return
	}

	logger.Info("Child check created",
		slog.String("transaction_id", child.TransactionID), slog.String("parent_id", folderID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(child))
}

// updateChild godoc
// @Summary Update a child check
// @Description Merges check fields and rederives countered check and EWT
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   transactionID path string true "Folder ID"
// @Param   childID path string true "Child check ID"
// @Param   child body dto.UpdateChildRequest true "Fields to merge"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Child not found"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions/{transactionID}/children/{childID} [put]
func (h *transactionHandler) updateChild(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateChild", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	childID := c.Param("childID")

	child, err := h.txnService.UpdateChild(c.Request.Context(), userID, childID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update child check")
		return
	}

	logger.Info("Child check updated", slog.String("transaction_id", childID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(child))
}

// getFolderTotals godoc
// @Summary Get folder totals
// @Description Recomputes the folder money view from its current children; totals are never cached
// @Tags transactions
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   transactionID path string true "Folder ID"
// @Success 200 {object} dto.FolderTotalsResponse
// @Failure 404 {object} map[string]string "Folder not found"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions/{transactionID}/totals [get]
func (h *transactionHandler) getFolderTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	folderID := c.Param("transactionID")

	totals, err := h.reconService.ComputeFolderTotals(c.Request.Context(), userID, folderID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute folder totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToFolderTotalsResponse(*totals))
}

// payFolder godoc
// @Summary Mark a folder paid
// @Description Transitions a pending folder to PAID when every child check is complete; exactly one of two concurrent attempts wins
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   transactionID path string true "Folder ID"
// @Param   notes body dto.PayFolderRequest false "Optional notes"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Folder not found"
// @Failure 409 {object} map[string]string "Folder not pending or has incomplete checks"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions/{transactionID}/pay [post]
func (h *transactionHandler) payFolder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	req, ok := bindOptionalPayRequest(c, logger)
	if !ok {
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	folderID := c.Param("transactionID")

	folder, err := h.reconService.MarkFolderPaid(c.Request.Context(), userID, folderID, req.Notes)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to mark folder paid")
		return
	}

	logger.Info("Folder marked paid", slog.String("transaction_id", folderID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(folder))
}

// declineFolder godoc
// @Summary Decline a folder
// @Description Transitions a pending folder to DECLINED; completeness is not required
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   transactionID path string true "Folder ID"
// @Param   notes body dto.PayFolderRequest false "Optional notes"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Folder not found"
// @Failure 409 {object} map[string]string "Folder not pending"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions/{transactionID}/decline [post]
func (h *transactionHandler) declineFolder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	req, ok := bindOptionalPayRequest(c, logger)
	if !ok {
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	folderID := c.Param("transactionID")

	folder, err := h.reconService.DeclineFolder(c.Request.Context(), userID, folderID, req.Notes)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to decline folder")
		return
	}

	logger.Info("Folder declined", slog.String("transaction_id", folderID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(folder))
}

// archiveTransaction godoc
// @Summary Archive a folder or child check
// @Description Soft-deletes the item; its status is preserved for restore
// @Tags transactions
// @Produce  json
// @Param   branchID path string true "Branch"
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /branches/{branchID}/transactions/{transactionID} [delete]
func (h *transactionHandler) archiveTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")

	if err := h.txnService.ArchiveTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondServiceError(c, logger, err, "Failed to archive transaction")
		return
	}

	logger.Info("Transaction archived", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, gin.H{"message": "archived"})
}

// bindOptionalPayRequest binds settle notes when a body is present. Pay and
// decline accept an empty body.
func bindOptionalPayRequest(c *gin.Context, logger *slog.Logger) (dto.PayFolderRequest, bool) {
	var req dto.PayFolderRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for settle request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return req, false
	}
	return req, true
}
