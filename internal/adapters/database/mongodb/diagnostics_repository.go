package mongodb

import (
	"context"

	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	"github.com/bizedge/bizedge_backend/pkg/database"
)

// MongoDiagnosticsRepository reports gateway connectivity for the
// /test endpoint. It deliberately returns soft results instead of
// propagating driver failures.
type MongoDiagnosticsRepository struct {
	db *database.Mongo
}

// newMongoDiagnosticsRepository creates a new diagnostics repository.
func newMongoDiagnosticsRepository(db *database.Mongo) portsrepo.DiagnosticsRepositoryFacade {
	return &MongoDiagnosticsRepository{db: db}
}

// Ensure implementation matches interface
var _ portsrepo.DiagnosticsRepositoryFacade = (*MongoDiagnosticsRepository)(nil)

// Connected reports whether the gateway holds a live connection.
func (r *MongoDiagnosticsRepository) Connected() bool {
	return r.db.Connected()
}

// Ping verifies the connection end to end.
func (r *MongoDiagnosticsRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// ListCollectionNames lists up to limit known collection names.
func (r *MongoDiagnosticsRepository) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
