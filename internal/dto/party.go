package dto

import "github.com/bizedge/bizedge_backend/internal/core/domain"

// CreatePartyRequest defines the data needed to create a new party.
// Type defaults to "customer" when omitted.
type CreatePartyRequest struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Type        string  `json:"type" binding:"omitempty,oneof=customer supplier"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	GSTIN       string  `json:"gstin"`
	Address     string  `json:"address"`
	CreditLimit float64 `json:"credit_limit"`
	Outstanding float64 `json:"outstanding"`
}

// PartyResponse defines the data returned for a party, with the
// database identifier exposed as a string under "id".
type PartyResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email,omitempty"`
	GSTIN       string  `json:"gstin,omitempty"`
	Address     string  `json:"address,omitempty"`
	CreditLimit float64 `json:"credit_limit"`
	Outstanding float64 `json:"outstanding"`
}

// ToPartyResponse converts a domain.Party to a PartyResponse DTO
func ToPartyResponse(p domain.Party) PartyResponse {
	return PartyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		Phone:       p.Phone,
		Email:       p.Email,
		GSTIN:       p.GSTIN,
		Address:     p.Address,
		CreditLimit: p.CreditLimit,
		Outstanding: p.Outstanding,
	}
}

// ToPartyResponseSlice converts a slice of domain.Party to DTOs
func ToPartyResponseSlice(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(p)
	}
	return res
}
