package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/bizedge/bizedge_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
	}
}

// createInvoice godoc
// @Summary Post an invoice
// @Description Creates a sale or purchase invoice and adjusts stock of the referenced products
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.CreateResponse
// @Failure 422 {object} dto.ValidationErrorResponse "Validation error"
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	id, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created successfully", slog.String("invoice_id", id))
	c.JSON(http.StatusOK, dto.CreateResponse{ID: id})
}

// listInvoices godoc
// @Summary List all invoices
// @Description Retrieves every stored invoice with its string identifier
// @Tags invoices
// @Produce json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponseSlice(invoices))
}
