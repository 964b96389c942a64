package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Transaction is the persistence model for the "transaction" collection.
type Transaction struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Type      string        `bson:"type"`
	Method    string        `bson:"method"`
	Amount    float64       `bson:"amount"`
	Reference string        `bson:"reference,omitempty"`
	Tag       string        `bson:"tag,omitempty"`
	Date      *time.Time    `bson:"date,omitempty"`
}
