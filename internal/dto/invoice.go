package dto

import (
	"time"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
)

// InvoiceItemRequest is one embedded invoice line. Total is accepted
// as sent; the server does not recompute or verify it against
// qty x price.
type InvoiceItemRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Qty       float64  `json:"qty" binding:"required,gt=0"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
	GSTRate   float64  `json:"gst_rate" binding:"gte=0"`
	Total     *float64 `json:"total" binding:"required,gte=0"`
}

// CreateInvoiceRequest defines the data needed to post an invoice.
// Type defaults to "sale" and mode to "upi" when omitted. Items has
// no minimum-length constraint.
type CreateInvoiceRequest struct {
	Type      string               `json:"type" binding:"omitempty,oneof=sale purchase"`
	Number    string               `json:"number" binding:"required"`
	PartyID   string               `json:"party_id" binding:"required"`
	PartyName string               `json:"party_name" binding:"required"`
	Items     []InvoiceItemRequest `json:"items" binding:"dive"`
	Subtotal  *float64             `json:"subtotal" binding:"required,gte=0"`
	GSTAmount float64              `json:"gst_amount" binding:"gte=0"`
	Discount  float64              `json:"discount" binding:"gte=0"`
	RoundOff  float64              `json:"round_off"`
	Total     *float64             `json:"total" binding:"required,gte=0"`
	Paid      float64              `json:"paid" binding:"gte=0"`
	Mode      string               `json:"mode" binding:"omitempty,oneof=cash bank upi card"`
	Notes     string               `json:"notes"`
	Date      *time.Time           `json:"date"`
}

// InvoiceItemResponse mirrors domain.InvoiceItem.
type InvoiceItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Qty       float64 `json:"qty"`
	Price     float64 `json:"price"`
	GSTRate   float64 `json:"gst_rate"`
	Total     float64 `json:"total"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID        string                `json:"id"`
	Type      string                `json:"type"`
	Number    string                `json:"number"`
	PartyID   string                `json:"party_id"`
	PartyName string                `json:"party_name"`
	Items     []InvoiceItemResponse `json:"items"`
	Subtotal  float64               `json:"subtotal"`
	GSTAmount float64               `json:"gst_amount"`
	Discount  float64               `json:"discount"`
	RoundOff  float64               `json:"round_off"`
	Total     float64               `json:"total"`
	Paid      float64               `json:"paid"`
	Mode      string                `json:"mode"`
	Notes     string                `json:"notes,omitempty"`
	Date      *time.Time            `json:"date,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO
func ToInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
			GSTRate:   it.GSTRate,
			Total:     it.Total,
		}
	}
	return InvoiceResponse{
		ID:        inv.ID,
		Type:      string(inv.Type),
		Number:    inv.Number,
		PartyID:   inv.PartyID,
		PartyName: inv.PartyName,
		Items:     items,
		Subtotal:  inv.Subtotal,
		GSTAmount: inv.GSTAmount,
		Discount:  inv.Discount,
		RoundOff:  inv.RoundOff,
		Total:     inv.Total,
		Paid:      inv.Paid,
		Mode:      string(inv.Mode),
		Notes:     inv.Notes,
		Date:      inv.Date,
	}
}

// ToInvoiceResponseSlice converts a slice of domain.Invoice to DTOs
func ToInvoiceResponseSlice(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(inv)
	}
	return res
}
