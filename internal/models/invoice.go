package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// InvoiceItem is an embedded line inside an invoice document, not a
// standalone collection.
type InvoiceItem struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Qty       float64 `bson:"qty"`
	Price     float64 `bson:"price"`
	GSTRate   float64 `bson:"gst_rate"`
	Total     float64 `bson:"total"`
}

// Invoice is the persistence model for the "invoice" collection.
type Invoice struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Type      string        `bson:"type"`
	Number    string        `bson:"number"`
	PartyID   string        `bson:"party_id"`
	PartyName string        `bson:"party_name"`
	Items     []InvoiceItem `bson:"items"`
	Subtotal  float64       `bson:"subtotal"`
	GSTAmount float64       `bson:"gst_amount"`
	Discount  float64       `bson:"discount"`
	RoundOff  float64       `bson:"round_off"`
	Total     float64       `bson:"total"`
	Paid      float64       `bson:"paid"`
	Mode      string        `bson:"mode"`
	Notes     string        `bson:"notes,omitempty"`
	Date      *time.Time    `bson:"date,omitempty"`
}
