package dto

import (
	"time"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a ledger
// entry. Method defaults to "bank" when omitted.
type CreateTransactionRequest struct {
	Type      string     `json:"type" binding:"required,oneof=in out"`
	Method    string     `json:"method" binding:"omitempty,oneof=cash bank upi card"`
	Amount    *float64   `json:"amount" binding:"required,gt=0"`
	Reference string     `json:"reference"`
	Tag       string     `json:"tag"`
	Date      *time.Time `json:"date"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Method    string     `json:"method"`
	Amount    float64    `json:"amount"`
	Reference string     `json:"reference,omitempty"`
	Tag       string     `json:"tag,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Type:      string(t.Type),
		Method:    string(t.Method),
		Amount:    t.Amount,
		Reference: t.Reference,
		Tag:       t.Tag,
		Date:      t.Date,
	}
}

// ToTransactionResponseSlice converts a slice of domain.Transaction to DTOs
func ToTransactionResponseSlice(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}
