package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawtopia/petshop-api/internal/domain"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

type fakeAddressRepo struct {
	addresses map[int64]*domain.Address
	nextID    int64
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[int64]*domain.Address)}
}

func (f *fakeAddressRepo) Upsert(_ context.Context, address *domain.Address) error {
	if existing, ok := f.addresses[address.CustomerID]; ok {
		address.ID = existing.ID
	} else {
		f.nextID++
		address.ID = f.nextID
	}
	clone := *address
	f.addresses[address.CustomerID] = &clone
	return nil
}

func (f *fakeAddressRepo) GetByCustomerID(_ context.Context, customerID int64) (*domain.Address, error) {
	address, ok := f.addresses[customerID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *address
	return &clone, nil
}

func (f *fakeAddressRepo) DeleteByCustomerID(_ context.Context, customerID int64) error {
	if _, ok := f.addresses[customerID]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.addresses, customerID)
	return nil
}

func (f *fakeAddressRepo) List(_ context.Context) ([]domain.Address, error) {
	out := make([]domain.Address, 0, len(f.addresses))
	for _, address := range f.addresses {
		out = append(out, *address)
	}
	return out, nil
}

func newTestUserService(t *testing.T) (*UserService, *fakeCustomerRepo, *fakeAddressRepo) {
	t.Helper()
	customers := newFakeCustomerRepo()
	addresses := newFakeAddressRepo()
	return NewUserService(customers, addresses, 4), customers, addresses
}

func seedCustomer(t *testing.T, customers *fakeCustomerRepo, username, email string) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{
		Username: username,
		Email:    email,
		Role:     domain.RoleCustomer,
	}
	require.NoError(t, customers.Create(context.Background(), customer))
	return customer
}

func TestUpdateRejectsTakenUsername(t *testing.T) {
	svc, customers, _ := newTestUserService(t)
	ctx := context.Background()

	seedCustomer(t, customers, "jess", "jess@example.com")
	other := seedCustomer(t, customers, "sam", "sam@example.com")

	_, err := svc.Update(ctx, other.ID, CustomerUpdate{Username: "jess"})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "Username already taken by another user!", domainErr.Message)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestUpdateRejectsTakenEmail(t *testing.T) {
	svc, customers, _ := newTestUserService(t)
	ctx := context.Background()

	seedCustomer(t, customers, "jess", "jess@example.com")
	other := seedCustomer(t, customers, "sam", "sam@example.com")

	_, err := svc.Update(ctx, other.ID, CustomerUpdate{Email: "jess@example.com"})
	require.Error(t, err)
	assert.Equal(t, "Email already registered by another user!", apperrors.ToDomainError(err).Message)
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	svc, customers, _ := newTestUserService(t)
	ctx := context.Background()

	customer := seedCustomer(t, customers, "jess", "jess@example.com")
	first := "Jessica"

	updated, err := svc.Update(ctx, customer.ID, CustomerUpdate{
		FirstName: &first,
		Password:  "newpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jessica", updated.FirstName)
	assert.Equal(t, "jess", updated.Username)
	assert.NotEmpty(t, updated.PasswordHash)
	assert.NotEqual(t, "newpass", updated.PasswordHash)

	// Keeping your own username is not a conflict.
	_, err = svc.Update(ctx, customer.ID, CustomerUpdate{Username: "jess"})
	assert.NoError(t, err)
}

func TestAddressLifecycle(t *testing.T) {
	svc, customers, _ := newTestUserService(t)
	ctx := context.Background()

	customer := seedCustomer(t, customers, "jess", "jess@example.com")

	created, err := svc.UpsertAddress(ctx, customer.ID, &domain.Address{
		Region: "NCR", City: "Quezon City", Street: "1 Maginhawa St",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, created.CustomerID)

	// Upsert replaces rather than duplicating.
	replaced, err := svc.UpsertAddress(ctx, customer.ID, &domain.Address{
		Region: "NCR", City: "Makati", Street: "2 Ayala Ave",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)

	got, err := svc.GetAddress(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Makati", got.City)

	all, err := svc.ListAddresses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteAddress(ctx, customer.ID))
	_, err = svc.GetAddress(ctx, customer.ID)
	assert.Error(t, err)
}

func TestUpsertAddressRequiresExistingCustomer(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.UpsertAddress(context.Background(), 404, &domain.Address{Region: "NCR"})
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}
