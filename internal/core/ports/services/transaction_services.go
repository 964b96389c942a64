package services

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/dto"
)

// TransactionSvcFacade defines the ledger operations exposed to handlers.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (string, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
