package domain

// InsightTotals holds the invoice sums underlying the insights report.
type InsightTotals struct {
	Sales    float64
	Purchase float64
	Profit   float64
}

// TopProduct is one row of the top-products-by-revenue ranking,
// aggregated over sale-invoice line items by denormalized item name.
type TopProduct struct {
	Name    string
	Qty     float64
	Revenue float64
}

// Insights is the composite on-demand report computed from stored
// invoices and products.
type Insights struct {
	Totals      InsightTotals
	LowStock    []Product
	TopProducts []TopProduct
}
