package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/dto"
	"github.com/opms-dev/opms_backend/internal/middleware"
)

// archiveHandler handles the archive screen: list, restore and purge.
type archiveHandler struct {
	txnService portssvc.TransactionService
}

// registerArchiveRoutes registers archive routes at the API root; the
// archive spans all of an owner's branches.
func registerArchiveRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionService) {
	h := &archiveHandler{txnService: txnService}

	archive := rg.Group("/archive")
	{
		archive.GET("", h.listArchived)
		archive.POST("/:transactionID/restore", h.restoreTransaction)
		archive.DELETE("/:transactionID", h.purgeTransaction)
	}
}

// listArchived godoc
// @Summary List archived items
// @Description Lists the owner's archived folders and checks across branches
// @Tags archive
// @Produce  json
// @Success 200 {array} dto.ArchivedItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /archive [get]
func (h *archiveHandler) listArchived(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	items, err := h.txnService.ListArchived(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list archived items")
		return
	}

	c.JSON(http.StatusOK, dto.ToArchivedItemResponses(items))
}

// restoreTransaction godoc
// @Summary Restore an archived item
// @Description Brings an archived folder or check back with its prior status
// @Tags archive
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Archived item not found"
// @Security BearerAuth
// @Router /archive/{transactionID}/restore [post]
func (h *archiveHandler) restoreTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")

	if err := h.txnService.RestoreTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondServiceError(c, logger, err, "Failed to restore transaction")
		return
	}

	logger.Info("Transaction restored", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, gin.H{"message": "restored"})
}

// purgeTransaction godoc
// @Summary Permanently delete an archived item
// @Description Removes an archived folder (with its checks) or a single check for good
// @Tags archive
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Archived item not found"
// @Security BearerAuth
// @Router /archive/{transactionID} [delete]
func (h *archiveHandler) purgeTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")

	if err := h.txnService.PurgeTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondServiceError(c, logger, err, "Failed to purge transaction")
		return
	}

	logger.Info("Transaction purged", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, gin.H{"message": "purged"})
}
