package mongodb

import (
	"github.com/bizedge/bizedge_backend/internal/apperrors"
	"github.com/bizedge/bizedge_backend/pkg/database"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// BaseRepository provides common functionality for all repositories.
// Every collection access goes through Collection so a degraded
// gateway uniformly fails requests with ErrDBUnavailable instead of
// panicking on a nil handle.
type BaseRepository struct {
	DB *database.Mongo
}

// Collection resolves the named collection, or reports that the
// gateway is not connected.
func (r *BaseRepository) Collection(name string) (*mongo.Collection, error) {
	if !r.DB.Connected() {
		return nil, apperrors.ErrDBUnavailable
	}
	return r.DB.Collection(name), nil
}
