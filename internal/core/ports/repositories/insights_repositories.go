package repositories

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
)

// InsightsRepositoryFacade exposes the aggregate queries behind the
// insights report. All three are evaluated by the database engine,
// not by application code.
type InsightsRepositoryFacade interface {
	// SumInvoiceTotals sums the `total` field over all invoices of the
	// given type; missing totals contribute zero.
	SumInvoiceTotals(ctx context.Context, invoiceType domain.InvoiceType) (float64, error)
	// ListLowStockProducts returns products whose stock_qty is at or
	// below their own low_stock_threshold.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
	// TopProductsByRevenue groups sale-invoice line items by item name,
	// summing qty and revenue, sorted by revenue descending, capped at
	// limit rows. Tie order follows the engine.
	TopProductsByRevenue(ctx context.Context, limit int) ([]domain.TopProduct, error)
}
