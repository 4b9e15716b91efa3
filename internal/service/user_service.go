package service

import (
	"context"

	"github.com/pawtopia/petshop-api/internal/auth"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/repository"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// CustomerUpdate is a partial update; empty fields are left untouched.
type CustomerUpdate struct {
	Username  string
	Password  string
	Email     string
	FirstName *string
	LastName  *string
	Role      string
}

// UserService covers profile reads and the admin-side user management.
type UserService struct {
	customers  repository.CustomerRepository
	addresses  repository.AddressRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(customers repository.CustomerRepository, addresses repository.AddressRepository, bcryptCost int) *UserService {
	return &UserService{customers: customers, addresses: addresses, bcryptCost: bcryptCost}
}

// GetByID returns one customer.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// GetByUsername returns the customer for the session's subject.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	return s.customers.GetByUsername(ctx, username)
}

// List returns all customers.
func (s *UserService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

// Update applies a partial update, rejecting username and email values already
// taken by another customer.
func (s *UserService) Update(ctx context.Context, id int64, update CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Username != "" && update.Username != customer.Username {
		other, err := s.customers.GetByUsername(ctx, update.Username)
		if err == nil && other.ID != id {
			return nil, apperrors.NewConflict("Username already taken by another user!", nil)
		}
		customer.Username = update.Username
	}
	if update.Email != "" && update.Email != customer.Email {
		other, err := s.customers.GetByEmail(ctx, update.Email)
		if err == nil && other.ID != id {
			return nil, apperrors.NewConflict("Email already registered by another user!", nil)
		}
		customer.Email = update.Email
	}
	if update.Password != "" {
		hash, err := auth.HashPassword(update.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = hash
	}
	if update.FirstName != nil {
		customer.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		customer.LastName = *update.LastName
	}
	if update.Role != "" {
		customer.Role = domain.Role(update.Role)
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer and, via cascade, its cart and address.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.customers.Delete(ctx, id)
}

// UpsertAddress creates or replaces the customer's address.
func (s *UserService) UpsertAddress(ctx context.Context, customerID int64, address *domain.Address) (*domain.Address, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	address.CustomerID = customerID
	if err := s.addresses.Upsert(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// GetAddress returns the customer's address.
func (s *UserService) GetAddress(ctx context.Context, customerID int64) (*domain.Address, error) {
	return s.addresses.GetByCustomerID(ctx, customerID)
}

// DeleteAddress removes the customer's address.
func (s *UserService) DeleteAddress(ctx context.Context, customerID int64) error {
	return s.addresses.DeleteByCustomerID(ctx, customerID)
}

// ListAddresses returns every stored address.
func (s *UserService) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	return s.addresses.List(ctx)
}
