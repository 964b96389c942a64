package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/bizedge/bizedge_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to ledger entries.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to ledger entries.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
	}
}

// createTransaction godoc
// @Summary Record a ledger entry
// @Description Creates a bank/cash ledger entry with no derived effects
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.CreateResponse
// @Failure 422 {object} dto.ValidationErrorResponse "Validation error"
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	id, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", id))
	c.JSON(http.StatusOK, dto.CreateResponse{ID: id})
}

// listTransactions godoc
// @Summary List all ledger entries
// @Description Retrieves every stored ledger entry with its string identifier
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponseSlice(txns))
}
