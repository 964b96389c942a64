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

const partyCollection = "party"

type MongoPartyRepository struct {
	BaseRepository
}

// newMongoPartyRepository creates a new repository for party data.
func newMongoPartyRepository(db *database.Mongo) portsrepo.PartyRepositoryFacade {
	return &MongoPartyRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartyRepositoryFacade = (*MongoPartyRepository)(nil)

// SaveParty inserts a new party document and returns its hex identifier.
func (r *MongoPartyRepository) SaveParty(ctx context.Context, party domain.Party) (string, error) {
	coll, err := r.Collection(partyCollection)
	if err != nil {
		return "", err
	}

	res, err := coll.InsertOne(ctx, mapping.ToModelParty(party))
	if err != nil {
		return "", fmt.Errorf("failed to insert party: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListParties fetches all party documents in natural storage order.
func (r *MongoPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	coll, err := r.Collection(partyCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}

	var modelParties []models.Party
	if err := cursor.All(ctx, &modelParties); err != nil {
		return nil, fmt.Errorf("failed to decode parties: %w", err)
	}

	return mapping.ToDomainPartySlice(modelParties), nil
}
