package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a ledger entry and returns its generated identifier.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (string, error) {
	txn := domain.Transaction{
		Type:      domain.TransactionType(req.Type),
		Method:    domain.PaymentMode(req.Method),
		Amount:    *req.Amount,
		Reference: req.Reference,
		Tag:       req.Tag,
		Date:      req.Date,
	}
	if txn.Method == "" {
		txn.Method = domain.ModeBank
	}

	id, err := s.transactionRepo.SaveTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_type", string(txn.Type)))
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", id))
	return id, nil
}

// ListTransactions returns all stored ledger entries.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	return txns, nil
}
