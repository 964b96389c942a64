package dto

import "github.com/bizedge/bizedge_backend/internal/core/domain"

// CreateProductRequest defines the data needed to create a new product.
// Price is a pointer so a present zero price passes the required check.
// Unit defaults to "pcs" when omitted.
type CreateProductRequest struct {
	Name              string   `json:"name" binding:"required"`
	SKU               string   `json:"sku"`
	Barcode           string   `json:"barcode"`
	Category          string   `json:"category"`
	HSN               string   `json:"hsn"`
	Price             *float64 `json:"price" binding:"required,gte=0"`
	PurchasePrice     *float64 `json:"purchase_price" binding:"omitempty,gte=0"`
	GSTRate           float64  `json:"gst_rate" binding:"gte=0"`
	StockQty          float64  `json:"stock_qty" binding:"gte=0"`
	LowStockThreshold float64  `json:"low_stock_threshold" binding:"gte=0"`
	Unit              string   `json:"unit"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	SKU               string  `json:"sku,omitempty"`
	Barcode           string  `json:"barcode,omitempty"`
	Category          string  `json:"category,omitempty"`
	HSN               string  `json:"hsn,omitempty"`
	Price             float64 `json:"price"`
	PurchasePrice     float64 `json:"purchase_price,omitempty"`
	GSTRate           float64 `json:"gst_rate"`
	StockQty          float64 `json:"stock_qty"`
	LowStockThreshold float64 `json:"low_stock_threshold"`
	Unit              string  `json:"unit"`
}

// ToProductResponse converts a domain.Product to a ProductResponse DTO
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Barcode:           p.Barcode,
		Category:          p.Category,
		HSN:               p.HSN,
		Price:             p.Price,
		PurchasePrice:     p.PurchasePrice,
		GSTRate:           p.GSTRate,
		StockQty:          p.StockQty,
		LowStockThreshold: p.LowStockThreshold,
		Unit:              p.Unit,
	}
}

// ToProductResponseSlice converts a slice of domain.Product to DTOs
func ToProductResponseSlice(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(p)
	}
	return res
}
