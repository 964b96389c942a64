package repositories

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence operations for invoices.
type InvoiceRepositoryFacade interface {
	// SaveInvoice inserts a new invoice and returns its generated identifier.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (string, error)
	// ListInvoices fetches all invoices in natural storage order.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}
