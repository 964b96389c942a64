package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
)

// topProductsLimit caps the top-products ranking.
const topProductsLimit = 5

// insightsService implements the InsightsSvcFacade interface
type insightsService struct {
	BaseService
	insightsRepo portsrepo.InsightsRepositoryFacade
}

// NewInsightsService creates a new insights service
func NewInsightsService(repo portsrepo.InsightsRepositoryFacade) portssvc.InsightsSvcFacade {
	return &insightsService{insightsRepo: repo}
}

// Ensure insightsService implements the InsightsSvcFacade interface
var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

// ComputeInsights assembles the on-demand report: invoice totals,
// low-stock products and the top-products ranking. The sums and
// groupings are evaluated by the database engine; only the profit
// subtraction happens here.
func (s *insightsService) ComputeInsights(ctx context.Context) (*domain.Insights, error) {
	sales, err := s.insightsRepo.SumInvoiceTotals(ctx, domain.InvoiceSale)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum sale invoice totals")
		return nil, fmt.Errorf("failed to compute sales total: %w", err)
	}

	purchase, err := s.insightsRepo.SumInvoiceTotals(ctx, domain.InvoicePurchase)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum purchase invoice totals")
		return nil, fmt.Errorf("failed to compute purchase total: %w", err)
	}

	lowStock, err := s.insightsRepo.ListLowStockProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list low-stock products")
		return nil, fmt.Errorf("failed to list low-stock products: %w", err)
	}

	topProducts, err := s.insightsRepo.TopProductsByRevenue(ctx, topProductsLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to rank top products")
		return nil, fmt.Errorf("failed to rank top products: %w", err)
	}

	insights := &domain.Insights{
		Totals: domain.InsightTotals{
			Sales:    sales,
			Purchase: purchase,
			Profit:   sales - purchase,
		},
		LowStock:    lowStock,
		TopProducts: topProducts,
	}

	s.LogInfo(ctx, "Insights computed",
		slog.Float64("sales_total", sales),
		slog.Float64("purchase_total", purchase),
		slog.Int("low_stock_count", len(lowStock)),
		slog.Int("top_product_count", len(topProducts)))
	return insights, nil
}
