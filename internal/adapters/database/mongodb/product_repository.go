package mongodb

import (
	"context"
	"fmt"

	"github.com/bizedge/bizedge_backend/internal/apperrors"
	"github.com/bizedge/bizedge_backend/internal/core/domain"
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	"github.com/bizedge/bizedge_backend/internal/models"
	"github.com/bizedge/bizedge_backend/internal/utils/mapping"
	"github.com/bizedge/bizedge_backend/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const productCollection = "product"

type MongoProductRepository struct {
	BaseRepository
}

// newMongoProductRepository creates a new repository for product data.
func newMongoProductRepository(db *database.Mongo) portsrepo.ProductRepositoryFacade {
	return &MongoProductRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryFacade = (*MongoProductRepository)(nil)

// SaveProduct inserts a new product document and returns its hex identifier.
func (r *MongoProductRepository) SaveProduct(ctx context.Context, product domain.Product) (string, error) {
	coll, err := r.Collection(productCollection)
	if err != nil {
		return "", err
	}

	res, err := coll.InsertOne(ctx, mapping.ToModelProduct(product))
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListProducts fetches all product documents in natural storage order.
func (r *MongoProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	coll, err := r.Collection(productCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	var modelProducts []models.Product
	if err := cursor.All(ctx, &modelProducts); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return mapping.ToDomainProductSlice(modelProducts), nil
}

// AdjustStock applies a signed delta to stock_qty with a single $inc,
// atomic at the engine. A malformed productID yields ErrInvalidID so
// invoice posting can skip the line; a missing product matches nothing
// and is a no-op. No negative-stock check is made.
func (r *MongoProductRepository) AdjustStock(ctx context.Context, productID string, delta float64) error {
	oid, err := bson.ObjectIDFromHex(productID)
	if err != nil {
		return apperrors.ErrInvalidID
	}

	coll, err := r.Collection(productCollection)
	if err != nil {
		return err
	}

	_, err = coll.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"stock_qty": delta}})
	if err != nil {
		return fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}
	return nil
}
