package services

import (
	"context"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/dto"
)

// PartySvcFacade defines the party operations exposed to handlers.
type PartySvcFacade interface {
	// CreateParty validates defaults onto the request and persists it,
	// returning the generated identifier.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest) (string, error)
	// ListParties returns all stored parties.
	ListParties(ctx context.Context) ([]domain.Party, error)
}
