package mongodb

import (
	"context"
	"fmt"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	"github.com/bizedge/bizedge_backend/internal/models"
	"github.com/bizedge/bizedge_backend/internal/utils/mapping"
	"github.com/bizedge/bizedge_backend/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const transactionCollection = "transaction"

type MongoTransactionRepository struct {
	BaseRepository
}

// newMongoTransactionRepository creates a new repository for ledger entries.
func newMongoTransactionRepository(db *database.Mongo) portsrepo.TransactionRepositoryFacade {
	return &MongoTransactionRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*MongoTransactionRepository)(nil)

// SaveTransaction inserts a new ledger entry and returns its hex identifier.
func (r *MongoTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	coll, err := r.Collection(transactionCollection)
	if err != nil {
		return "", err
	}

	res, err := coll.InsertOne(ctx, mapping.ToModelTransaction(txn))
	if err != nil {
		return "", fmt.Errorf("failed to insert transaction: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListTransactions fetches all ledger entries in natural storage order.
func (r *MongoTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	coll, err := r.Collection(transactionCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	var modelTxns []models.Transaction
	if err := cursor.All(ctx, &modelTxns); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
