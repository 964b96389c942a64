package domain

// UserRole enumerates the roles a user account can hold.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleAccountant UserRole = "accountant"
	RoleSales      UserRole = "sales"
)

// User is an identity/role record. Reserved for a future auth surface;
// no endpoint currently reads or writes it.
type User struct {
	ID       string
	Name     string
	Email    string
	Role     UserRole
	Locale   string
	IsActive bool
}
