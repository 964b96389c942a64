package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Party is the persistence model for the "party" collection.
type Party struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Type        string        `bson:"type"`
	Phone       string        `bson:"phone,omitempty"`
	Email       string        `bson:"email,omitempty"`
	GSTIN       string        `bson:"gstin,omitempty"`
	Address     string        `bson:"address,omitempty"`
	CreditLimit float64       `bson:"credit_limit"`
	Outstanding float64       `bson:"outstanding"`
}
