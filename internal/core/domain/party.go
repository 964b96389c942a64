package domain

// PartyType distinguishes customers from suppliers.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
)

// Party represents a customer or supplier business entity.
// Foreign references to parties (invoice.party_id) are copied by
// convention, not validated for existence.
type Party struct {
	ID          string
	Name        string
	Type        PartyType
	Phone       string
	Email       string
	GSTIN       string
	Address     string
	CreditLimit float64
	Outstanding float64
}
