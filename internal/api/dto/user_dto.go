package dto

import "github.com/pawtopia/petshop-api/internal/domain"

// UserResponse is the safe view of a customer account; the password hash never
// leaves the server.
type UserResponse struct {
	ID           int64   `json:"userId"`
	Username     string  `json:"username"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	GoogleID     *string `json:"googleId,omitempty"`
	AuthProvider *string `json:"authProvider,omitempty"`
}

// NewUserResponse maps a customer to its response view.
func NewUserResponse(c *domain.Customer) UserResponse {
	return UserResponse{
		ID:           c.ID,
		Username:     c.Username,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Role:         string(c.Role),
		GoogleID:     c.GoogleID,
		AuthProvider: c.AuthProvider,
	}
}

// UserUpdateRequest payload for profile edits. Empty fields are ignored;
// pointer fields distinguish "clear" from "leave alone".
type UserUpdateRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      string  `json:"role"`
}

// AddressRequest payload for the single delivery address.
type AddressRequest struct {
	Region     string `json:"region"`
	Province   string `json:"province"`
	City       string `json:"city"`
	Barangay   string `json:"barangay"`
	PostalCode string `json:"postalCode"`
	Street     string `json:"street"`
}

// AddressResponse is the stored address view.
type AddressResponse struct {
	ID         int64  `json:"addressId"`
	CustomerID int64  `json:"userId"`
	Region     string `json:"region"`
	Province   string `json:"province"`
	City       string `json:"city"`
	Barangay   string `json:"barangay"`
	PostalCode string `json:"postalCode"`
	Street     string `json:"street"`
}

// NewAddressResponse maps an address to its response view.
func NewAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Region:     a.Region,
		Province:   a.Province,
		City:       a.City,
		Barangay:   a.Barangay,
		PostalCode: a.PostalCode,
		Street:     a.Street,
	}
}
