package mapping

import (
	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	items := make([]models.InvoiceItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = models.InvoiceItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
			GSTRate:   it.GSTRate,
			Total:     it.Total,
		}
	}
	m := models.Invoice{
		Type:      string(d.Type),
		Number:    d.Number,
		PartyID:   d.PartyID,
		PartyName: d.PartyName,
		Items:     items,
		Subtotal:  d.Subtotal,
		GSTAmount: d.GSTAmount,
		Discount:  d.Discount,
		RoundOff:  d.RoundOff,
		Total:     d.Total,
		Paid:      d.Paid,
		Mode:      string(d.Mode),
		Notes:     d.Notes,
		Date:      d.Date,
	}
	if oid, err := bson.ObjectIDFromHex(d.ID); err == nil {
		m.ID = oid
	}
	return m
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	items := make([]domain.InvoiceItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.InvoiceItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
			GSTRate:   it.GSTRate,
			Total:     it.Total,
		}
	}
	return domain.Invoice{
		ID:        m.ID.Hex(),
		Type:      domain.InvoiceType(m.Type),
		Number:    m.Number,
		PartyID:   m.PartyID,
		PartyName: m.PartyName,
		Items:     items,
		Subtotal:  m.Subtotal,
		GSTAmount: m.GSTAmount,
		Discount:  m.Discount,
		RoundOff:  m.RoundOff,
		Total:     m.Total,
		Paid:      m.Paid,
		Mode:      domain.PaymentMode(m.Mode),
		Notes:     m.Notes,
		Date:      m.Date,
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
