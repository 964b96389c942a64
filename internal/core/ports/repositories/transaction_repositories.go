package repositories

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
)

// TransactionRepositoryFacade defines persistence operations for ledger entries.
type TransactionRepositoryFacade interface {
	// SaveTransaction inserts a new ledger entry and returns its generated identifier.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (string, error)
	// ListTransactions fetches all ledger entries in natural storage order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
