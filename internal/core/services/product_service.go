package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
)

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service
func NewProductService(repo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: repo}
}

// Ensure productService implements the ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct persists a new product and returns its generated identifier.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (string, error) {
	product := domain.Product{
		Name:              req.Name,
		SKU:               req.SKU,
		Barcode:           req.Barcode,
		Category:          req.Category,
		HSN:               req.HSN,
		Price:             *req.Price,
		GSTRate:           req.GSTRate,
		StockQty:          req.StockQty,
		LowStockThreshold: req.LowStockThreshold,
		Unit:              req.Unit,
	}
	if req.PurchasePrice != nil {
		product.PurchasePrice = *req.PurchasePrice
	}
	if product.Unit == "" {
		product.Unit = "pcs"
	}

	id, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_name", product.Name))
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", id))
	return id, nil
}

// ListProducts returns all stored products.
func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	return products, nil
}
