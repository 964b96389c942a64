package mongodb

import (
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	"github.com/bizedge/bizedge_backend/pkg/database"
)

// NewRepositoryProvider wires every repository to the shared database
// handle. The handle may be degraded; repositories surface that per
// request rather than at construction time.
func NewRepositoryProvider(db *database.Mongo) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:       newMongoPartyRepository(db),
		ProductRepo:     newMongoProductRepository(db),
		InvoiceRepo:     newMongoInvoiceRepository(db),
		TransactionRepo: newMongoTransactionRepository(db),
		InsightsRepo:    newMongoInsightsRepository(db),
		DiagnosticsRepo: newMongoDiagnosticsRepository(db),
	}
}
