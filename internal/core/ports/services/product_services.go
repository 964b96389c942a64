package services

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/dto"
)

// ProductSvcFacade defines the product operations exposed to handlers.
// Stock is never set directly through this surface; only invoice
// posting adjusts it.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (string, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
