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
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoInsightsRepository answers the aggregate queries behind the
// insights report. All pipelines run inside the engine; the
// application only decodes their rows.
type MongoInsightsRepository struct {
	BaseRepository
}

// newMongoInsightsRepository creates a new repository for insight aggregations.
func newMongoInsightsRepository(db *database.Mongo) portsrepo.InsightsRepositoryFacade {
	return &MongoInsightsRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InsightsRepositoryFacade = (*MongoInsightsRepository)(nil)

// SumInvoiceTotals sums `total` over all invoices of the given type.
// $sum treats missing totals as zero; an empty match yields no row,
// which decodes to a zero sum.
func (r *MongoInsightsRepository) SumInvoiceTotals(ctx context.Context, invoiceType domain.InvoiceType) (float64, error) {
	coll, err := r.Collection(invoiceCollection)
	if err != nil {
		return 0, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "type", Value: string(invoiceType)}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum %s invoice totals: %w", invoiceType, err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode %s invoice totals: %w", invoiceType, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// ListLowStockProducts returns products at or below their own reorder
// threshold, comparing the two fields per document with $expr.
func (r *MongoInsightsRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	coll, err := r.Collection(productCollection)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "$expr", Value: bson.D{
		{Key: "$lte", Value: bson.A{"$stock_qty", "$low_stock_threshold"}},
	}}}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query low-stock products: %w", err)
	}

	var modelProducts []models.Product
	if err := cursor.All(ctx, &modelProducts); err != nil {
		return nil, fmt.Errorf("failed to decode low-stock products: %w", err)
	}

	return mapping.ToDomainProductSlice(modelProducts), nil
}

// TopProductsByRevenue groups sale-invoice line items by denormalized
// item name, summing qty and revenue, sorted by revenue descending and
// capped at limit rows. Ties keep engine order.
func (r *MongoInsightsRepository) TopProductsByRevenue(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	coll, err := r.Collection(invoiceCollection)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "type", Value: string(domain.InvoiceSale)}}}},
		bson.D{{Key: "$unwind", Value: "$items"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$items.name"},
			{Key: "qty", Value: bson.D{{Key: "$sum", Value: "$items.qty"}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$items.total"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "revenue", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top products: %w", err)
	}

	var rows []struct {
		Name    string  `bson:"_id"`
		Qty     float64 `bson:"qty"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode top products: %w", err)
	}

	top := make([]domain.TopProduct, len(rows))
	for i, row := range rows {
		top[i] = domain.TopProduct{Name: row.Name, Qty: row.Qty, Revenue: row.Revenue}
	}
	return top, nil
}
