package services

import (
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Party = NewPartyService(repos.PartyRepo)
	container.Product = NewProductService(repos.ProductRepo)

	// Invoice posting adjusts product stock, so it takes both repositories.
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ProductRepo)

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Insights = NewInsightsService(repos.InsightsRepo)
	container.Diagnostics = NewDiagnosticsService(cfg, repos.DiagnosticsRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PartySvcFacade       = (*partyService)(nil)
	_ portssvc.InvoiceSvcFacade     = (*invoiceService)(nil)
	_ portssvc.InsightsSvcFacade    = (*insightsService)(nil)
	_ portssvc.DiagnosticsSvcFacade = (*diagnosticsService)(nil)
)
