package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/bizedge/bizedge_backend/internal/apperrors"
	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/core/services"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (string, error) {
	args := m.Called(ctx, invoice)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// --- Test Suite Setup ---

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockProductRepo *MockProductRepository
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockProductRepo)
}

func saleInvoiceRequest(productID string, qty float64) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		Type:      "sale",
		Number:    "INV-001",
		PartyID:   "66cf2a9e8b9d4c0001a1b2c3",
		PartyName: "Acme Traders",
		Items: []dto.InvoiceItemRequest{
			{
				ProductID: productID,
				Name:      "Copper Wire 2mm",
				Qty:       qty,
				Price:     floatPtr(249.50),
				Total:     floatPtr(qty * 249.50),
			},
		},
		Subtotal: floatPtr(qty * 249.50),
		Total:    floatPtr(qty * 249.50),
		Mode:     "cash",
	}
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_SaleDecrementsStock() {
	ctx := context.Background()
	productID := "66cf2a9e8b9d4c0001a1b2d1"
	req := saleInvoiceRequest(productID, 3)

	suite.mockProductRepo.On("AdjustStock", ctx, productID, float64(-3)).Return(nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Type == domain.InvoiceSale && inv.Number == "INV-001" && len(inv.Items) == 1
	})).Return("66cf2a9e8b9d4c0001a1b2e1", nil).Once()

	id, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("66cf2a9e8b9d4c0001a1b2e1", id)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PurchaseIncrementsStock() {
	ctx := context.Background()
	productID := "66cf2a9e8b9d4c0001a1b2d1"
	req := saleInvoiceRequest(productID, 3)
	req.Type = "purchase"

	suite.mockProductRepo.On("AdjustStock", ctx, productID, float64(3)).Return(nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Type == domain.InvoicePurchase
	})).Return("66cf2a9e8b9d4c0001a1b2e2", nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DefaultsTypeAndMode() {
	ctx := context.Background()
	req := saleInvoiceRequest("66cf2a9e8b9d4c0001a1b2d1", 1)
	req.Type = ""
	req.Mode = ""

	suite.mockProductRepo.On("AdjustStock", ctx, mock.Anything, float64(-1)).Return(nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Type == domain.InvoiceSale && inv.Mode == domain.ModeUPI
	})).Return("66cf2a9e8b9d4c0001a1b2e3", nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_SkipsMalformedProductID() {
	ctx := context.Background()
	goodID := "66cf2a9e8b9d4c0001a1b2d1"
	req := saleInvoiceRequest("not-a-hex-id", 2)
	req.Items = append(req.Items, dto.InvoiceItemRequest{
		ProductID: goodID,
		Name:      "LED Bulb 9W",
		Qty:       4,
		Price:     floatPtr(120),
		Total:     floatPtr(480),
	})

	// The malformed id is skipped; the well-formed one still adjusts,
	// and the invoice itself is persisted regardless.
	suite.mockProductRepo.On("AdjustStock", ctx, "not-a-hex-id", float64(-2)).
		Return(apperrors.ErrInvalidID).Once()
	suite.mockProductRepo.On("AdjustStock", ctx, goodID, float64(-4)).Return(nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return len(inv.Items) == 2
	})).Return("66cf2a9e8b9d4c0001a1b2e4", nil).Once()

	id, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(id)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_StockErrorAbortsBeforeSave() {
	ctx := context.Background()
	req := saleInvoiceRequest("66cf2a9e8b9d4c0001a1b2d1", 2)

	adjustErr := fmt.Errorf("stock update: %w", apperrors.ErrDBUnavailable)
	suite.mockProductRepo.On("AdjustStock", ctx, mock.Anything, float64(-2)).Return(adjustErr).Once()

	id, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.Empty(id)
	suite.ErrorIs(err, apperrors.ErrDBUnavailable)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NoItems() {
	ctx := context.Background()
	req := saleInvoiceRequest("66cf2a9e8b9d4c0001a1b2d1", 1)
	req.Items = nil

	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return len(inv.Items) == 0
	})).Return("66cf2a9e8b9d4c0001a1b2e5", nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "AdjustStock")
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_Success() {
	ctx := context.Background()
	expected := []domain.Invoice{
		{ID: "66cf2a9e8b9d4c0001a1b2e1", Type: domain.InvoiceSale, Number: "INV-001"},
	}

	suite.mockInvoiceRepo.On("ListInvoices", ctx).Return(expected, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, invoices)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
