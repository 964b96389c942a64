package services_test

import (
	"context"
	"testing"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/core/services"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockProductRepository is a mock type for the ProductRepositoryFacade interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, productID string, delta float64) error {
	args := m.Called(ctx, productID, delta)
	return args.Error(0)
}

// floatPtr returns a pointer to the provided float64 value.
func floatPtr(f float64) *float64 {
	return &f
}

// --- Test Suite Setup ---

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ProductServiceTestSuite) TestCreateProduct_DefaultsUnitToPcs() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:  "Copper Wire 2mm",
		Price: floatPtr(249.50),
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Unit == "pcs" && p.Price == 249.50
	})).Return("66cf2a9e8b9d4c0001a1b2d1", nil).Once()

	id, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("66cf2a9e8b9d4c0001a1b2d1", id)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_ZeroPriceIsValid() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:  "Free Sample Sachet",
		Price: floatPtr(0),
		Unit:  "box",
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Price == 0 && p.Unit == "box"
	})).Return("66cf2a9e8b9d4c0001a1b2d2", nil).Once()

	id, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(id)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_OptionalPurchasePrice() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:              "LED Bulb 9W",
		Price:             floatPtr(120),
		PurchasePrice:     floatPtr(80),
		StockQty:          40,
		LowStockThreshold: 10,
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.PurchasePrice == 80 && p.StockQty == 40
	})).Return("66cf2a9e8b9d4c0001a1b2d3", nil).Once()

	_, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestListProducts_Success() {
	ctx := context.Background()
	expected := []domain.Product{
		{ID: "66cf2a9e8b9d4c0001a1b2d1", Name: "Copper Wire 2mm", Price: 249.50, Unit: "pcs"},
	}

	suite.mockRepo.On("ListProducts", ctx).Return(expected, nil).Once()

	products, err := suite.service.ListProducts(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, products)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
