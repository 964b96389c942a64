package repositories

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
)

// PartyRepositoryFacade defines persistence operations for parties.
type PartyRepositoryFacade interface {
	// SaveParty inserts a new party and returns its generated identifier.
	SaveParty(ctx context.Context, party domain.Party) (string, error)
	// ListParties fetches all parties in natural storage order.
	ListParties(ctx context.Context) ([]domain.Party, error)
}
