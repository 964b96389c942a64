package domain

// Product represents an inventory item.
// StockQty is the only field mutated after creation; it is adjusted
// (never set directly) by invoice posting and may go negative on
// oversold sales.
type Product struct {
	ID                string
	Name              string
	SKU               string
	Barcode           string
	Category          string
	HSN               string
	Price             float64
	PurchasePrice     float64
	GSTRate           float64
	StockQty          float64
	LowStockThreshold float64
	Unit              string
}

// IsLowStock reports whether the product is at or below its own
// reorder threshold.
func (p Product) IsLowStock() bool {
	return p.StockQty <= p.LowStockThreshold
}
