package services

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/dto"
)

// InvoiceSvcFacade defines the invoice operations exposed to handlers.
type InvoiceSvcFacade interface {
	// CreateInvoice posts an invoice: per line item it adjusts the
	// referenced product's stock (skipping malformed product ids), then
	// inserts the invoice document and returns its identifier. The
	// stock side effect is best-effort and not rolled back if the
	// insert fails.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (string, error)
	// ListInvoices returns all stored invoices.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}
