package mapping

import (
	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		Type:      string(d.Type),
		Method:    string(d.Method),
		Amount:    d.Amount,
		Reference: d.Reference,
		Tag:       d.Tag,
		Date:      d.Date,
	}
	if oid, err := bson.ObjectIDFromHex(d.ID); err == nil {
		m.ID = oid
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:        m.ID.Hex(),
		Type:      domain.TransactionType(m.Type),
		Method:    domain.PaymentMode(m.Method),
		Amount:    m.Amount,
		Reference: m.Reference,
		Tag:       m.Tag,
		Date:      m.Date,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
