package domain

import "time"

// InvoiceType determines the stock-adjustment direction on posting.
type InvoiceType string

const (
	InvoiceSale     InvoiceType = "sale"
	InvoicePurchase InvoiceType = "purchase"
)

// PaymentMode enumerates the accepted settlement modes.
type PaymentMode string

const (
	ModeCash PaymentMode = "cash"
	ModeBank PaymentMode = "bank"
	ModeUPI  PaymentMode = "upi"
	ModeCard PaymentMode = "card"
)

// InvoiceItem is an embedded invoice line. ProductID is an opaque
// reference to a Product; Name is a denormalized copy. Total is
// caller-supplied and not recomputed by the server.
type InvoiceItem struct {
	ProductID string
	Name      string
	Qty       float64
	Price     float64
	GSTRate   float64
	Total     float64
}

// Invoice is a sale or purchase document. Created once, immutable
// thereafter; each creation triggers stock mutation on referenced
// products.
type Invoice struct {
	ID        string
	Type      InvoiceType
	Number    string
	PartyID   string
	PartyName string
	Items     []InvoiceItem
	Subtotal  float64
	GSTAmount float64
	Discount  float64
	RoundOff  float64
	Total     float64
	Paid      float64
	Mode      PaymentMode
	Notes     string
	Date      *time.Time
}

// StockDelta returns the signed stock change a line item causes when
// this invoice is posted: stock leaves on sale, arrives on purchase.
func (inv Invoice) StockDelta(item InvoiceItem) float64 {
	if inv.Type == InvoiceSale {
		return -item.Qty
	}
	return item.Qty
}
