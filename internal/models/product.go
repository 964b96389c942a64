package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Product is the persistence model for the "product" collection.
// stock_qty is mutated in place by invoice posting via $inc.
type Product struct {
	ID                bson.ObjectID `bson:"_id,omitempty"`
	Name              string        `bson:"name"`
	SKU               string        `bson:"sku,omitempty"`
	Barcode           string        `bson:"barcode,omitempty"`
	Category          string        `bson:"category,omitempty"`
	HSN               string        `bson:"hsn,omitempty"`
	Price             float64       `bson:"price"`
	PurchasePrice     float64       `bson:"purchase_price,omitempty"`
	GSTRate           float64       `bson:"gst_rate"`
	StockQty          float64       `bson:"stock_qty"`
	LowStockThreshold float64       `bson:"low_stock_threshold"`
	Unit              string        `bson:"unit"`
}
