package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bizedge/bizedge_backend/internal/core/domain"
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
)

// partyService implements the PartySvcFacade interface
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new party service
func NewPartyService(repo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: repo}
}

// Ensure partyService implements the PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty persists a new party and returns its generated identifier.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (string, error) {
	party := domain.Party{
		Name:        req.Name,
		Type:        domain.PartyType(req.Type),
		Phone:       req.Phone,
		Email:       req.Email,
		GSTIN:       req.GSTIN,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
		Outstanding: req.Outstanding,
	}
	if party.Type == "" {
		party.Type = domain.PartyCustomer
	}

	id, err := s.partyRepo.SaveParty(ctx, party)
	if err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("party_name", party.Name))
		return "", fmt.Errorf("failed to create party: %w", err)
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", id), slog.String("party_type", string(party.Type)))
	return id, nil
}

// ListParties returns all stored parties.
func (s *partyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties")
		return nil, err
	}
	return parties, nil
}
