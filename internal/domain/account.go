package domain

import "time"

// AccountKind distinguishes the two credential namespaces. The kind is always
// selected explicitly by the caller (which login endpoint was hit), never
// inferred from stored data.
type AccountKind string

const (
	AccountKindAdmin    AccountKind = "ADMIN"
	AccountKindCustomer AccountKind = "CUSTOMER"
)

// Role is the claim embedded in issued tokens. Roles are disjoint capability
// sets: ADMIN does not implicitly satisfy CUSTOMER-scoped rules.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Account is the common view over the two credential variants. Admin and
// customer usernames live in separate tables with no cross-uniqueness
// constraint; a coincidental collision resolves to ADMIN at token issuance.
type Account interface {
	AccountID() int64
	AccountUsername() string
	AccountPasswordHash() string
	AccountRole() Role
	Kind() AccountKind
}

// Admin is a back-office operator account.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Admin) AccountID() int64            { return a.ID }
func (a *Admin) AccountUsername() string     { return a.Username }
func (a *Admin) AccountPasswordHash() string { return a.PasswordHash }
func (a *Admin) AccountRole() Role           { return a.Role }
func (a *Admin) Kind() AccountKind           { return AccountKindAdmin }

// Customer is a storefront shopper account. OAuth-provisioned customers carry
// the external provider identity and an unusable random password hash.
type Customer struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	Role         Role
	GoogleID     *string
	AuthProvider *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *Customer) AccountID() int64            { return c.ID }
func (c *Customer) AccountUsername() string     { return c.Username }
func (c *Customer) AccountPasswordHash() string { return c.PasswordHash }
func (c *Customer) AccountRole() Role           { return c.Role }
func (c *Customer) Kind() AccountKind           { return AccountKindCustomer }
