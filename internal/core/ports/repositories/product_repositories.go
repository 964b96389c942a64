package repositories

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
)

// ProductRepositoryFacade defines persistence operations for products.
type ProductRepositoryFacade interface {
	// SaveProduct inserts a new product and returns its generated identifier.
	SaveProduct(ctx context.Context, product domain.Product) (string, error)
	// ListProducts fetches all products in natural storage order.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// AdjustStock applies a signed delta to the referenced product's
	// stock_qty as a single atomic increment. It returns
	// apperrors.ErrInvalidID when productID is not a well-formed object
	// id; adjusting a non-existent product is a no-op.
	AdjustStock(ctx context.Context, productID string, delta float64) error
}
