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

const invoiceCollection = "invoice"

type MongoInvoiceRepository struct {
	BaseRepository
}

// newMongoInvoiceRepository creates a new repository for invoice data.
func newMongoInvoiceRepository(db *database.Mongo) portsrepo.InvoiceRepositoryFacade {
	return &MongoInvoiceRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*MongoInvoiceRepository)(nil)

// SaveInvoice inserts a new invoice document and returns its hex identifier.
func (r *MongoInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (string, error) {
	coll, err := r.Collection(invoiceCollection)
	if err != nil {
		return "", err
	}

	res, err := coll.InsertOne(ctx, mapping.ToModelInvoice(invoice))
	if err != nil {
		return "", fmt.Errorf("failed to insert invoice: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListInvoices fetches all invoice documents in natural storage order.
func (r *MongoInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	coll, err := r.Collection(invoiceCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}

	var modelInvoices []models.Invoice
	if err := cursor.All(ctx, &modelInvoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}
