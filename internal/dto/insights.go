package dto

import "github.com/bizedge/bizedge_backend/internal/core/domain"

// TotalsResponse holds the invoice sums of the insights report.
type TotalsResponse struct {
	Sales    float64 `json:"sales"`
	Purchase float64 `json:"purchase"`
	Profit   float64 `json:"profit"`
}

// TopProductResponse is one row of the top-products ranking. It has no
// native identifier; the grouping key is the denormalized item name.
type TopProductResponse struct {
	Name    string  `json:"name"`
	Qty     float64 `json:"qty"`
	Revenue float64 `json:"revenue"`
}

// InsightsResponse is the composite body of GET /api/insights.
type InsightsResponse struct {
	TopProducts []TopProductResponse `json:"top_products"`
	LowStock    []ProductResponse    `json:"low_stock"`
	Totals      TotalsResponse       `json:"totals"`
}

// ToInsightsResponse converts a domain.Insights to an InsightsResponse DTO
func ToInsightsResponse(in domain.Insights) InsightsResponse {
	top := make([]TopProductResponse, len(in.TopProducts))
	for i, tp := range in.TopProducts {
		top[i] = TopProductResponse{Name: tp.Name, Qty: tp.Qty, Revenue: tp.Revenue}
	}
	return InsightsResponse{
		TopProducts: top,
		LowStock:    ToProductResponseSlice(in.LowStock),
		Totals: TotalsResponse{
			Sales:    in.Totals.Sales,
			Purchase: in.Totals.Purchase,
			Profit:   in.Totals.Profit,
		},
	}
}
