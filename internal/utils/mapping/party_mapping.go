package mapping

import (
	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	m := models.Party{
		Name:        d.Name,
		Type:        string(d.Type),
		Phone:       d.Phone,
		Email:       d.Email,
		GSTIN:       d.GSTIN,
		Address:     d.Address,
		CreditLimit: d.CreditLimit,
		Outstanding: d.Outstanding,
	}
	if oid, err := bson.ObjectIDFromHex(d.ID); err == nil {
		m.ID = oid
	}
	return m
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Type:        domain.PartyType(m.Type),
		Phone:       m.Phone,
		Email:       m.Email,
		GSTIN:       m.GSTIN,
		Address:     m.Address,
		CreditLimit: m.CreditLimit,
		Outstanding: m.Outstanding,
	}
}

// ToDomainPartySlice converts a slice of model Parties to a slice of domain Parties
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
