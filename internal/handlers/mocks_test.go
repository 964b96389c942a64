package handlers_test

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/bizedge/bizedge_backend/internal/handlers"
	"github.com/bizedge/bizedge_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock InsightsService ---
type MockInsightsService struct {
	mock.Mock
}

func (m *MockInsightsService) ComputeInsights(ctx context.Context) (*domain.Insights, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Insights), args.Error(1)
}

var _ portssvc.InsightsSvcFacade = (*MockInsightsService)(nil)

// --- Mock DiagnosticsService ---
type MockDiagnosticsService struct {
	mock.Mock
}

func (m *MockDiagnosticsService) Check(ctx context.Context) dto.DiagnosticsResponse {
	args := m.Called(ctx)
	return args.Get(0).(dto.DiagnosticsResponse)
}

var _ portssvc.DiagnosticsSvcFacade = (*MockDiagnosticsService)(nil)

// mockServices bundles one mock per facade for a test router.
type mockServices struct {
	party       *MockPartyService
	product     *MockProductService
	invoice     *MockInvoiceService
	transaction *MockTransactionService
	insights    *MockInsightsService
	diagnostics *MockDiagnosticsService
}

// newTestRouter builds a gin engine with the full route surface wired
// to fresh mocks. Swagger is excluded via the production flag.
func newTestRouter() (*gin.Engine, *mockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	mocks := &mockServices{
		party:       new(MockPartyService),
		product:     new(MockProductService),
		invoice:     new(MockInvoiceService),
		transaction: new(MockTransactionService),
		insights:    new(MockInsightsService),
		diagnostics: new(MockDiagnosticsService),
	}

	container := &portssvc.ServiceContainer{
		Party:       mocks.party,
		Product:     mocks.product,
		Invoice:     mocks.invoice,
		Transaction: mocks.transaction,
		Insights:    mocks.insights,
		Diagnostics: mocks.diagnostics,
	}

	cfg := &config.Config{
		Port:         "8000",
		RateLimit:    "1000-M",
		IsProduction: true,
	}

	handlers.RegisterRoutes(router, cfg, container)
	return router, mocks
}
