package mapping

import (
	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	m := models.Product{
		Name:              d.Name,
		SKU:               d.SKU,
		Barcode:           d.Barcode,
		Category:          d.Category,
		HSN:               d.HSN,
		Price:             d.Price,
		PurchasePrice:     d.PurchasePrice,
		GSTRate:           d.GSTRate,
		StockQty:          d.StockQty,
		LowStockThreshold: d.LowStockThreshold,
		Unit:              d.Unit,
	}
	if oid, err := bson.ObjectIDFromHex(d.ID); err == nil {
		m.ID = oid
	}
	return m
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ID:                m.ID.Hex(),
		Name:              m.Name,
		SKU:               m.SKU,
		Barcode:           m.Barcode,
		Category:          m.Category,
		HSN:               m.HSN,
		Price:             m.Price,
		PurchasePrice:     m.PurchasePrice,
		GSTRate:           m.GSTRate,
		StockQty:          m.StockQty,
		LowStockThreshold: m.LowStockThreshold,
		Unit:              m.Unit,
	}
}

// ToDomainProductSlice converts a slice of model Products to a slice of domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
