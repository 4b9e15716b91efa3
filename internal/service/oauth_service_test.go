package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/auth"
	"github.com/pawtopia/petshop-api/internal/domain"
)

func newTestOAuthService(t *testing.T) (*OAuthService, *fakeCustomerRepo, *fakeCartRepo) {
	t.Helper()
	admins := newFakeAdminRepo()
	customers := newFakeCustomerRepo()
	carts := newFakeCartRepo()
	tokens := auth.NewTokenService("test-secret", 0, admins, customers, zap.NewNop())
	svc := NewOAuthService(customers, carts, tokens, 4, zap.NewNop())
	return svc, customers, carts
}

func TestOAuthLoginProvisionsNewCustomer(t *testing.T) {
	svc, customers, carts := newTestOAuthService(t)
	ctx := context.Background()

	customer, token, _, err := svc.Login(ctx, GoogleIdentity{
		Email:   "maria.santos@example.com",
		Name:    "Maria Santos Cruz",
		Subject: "google-sub-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "maria.santos", customer.Username)
	assert.Equal(t, "Maria", customer.FirstName)
	assert.Equal(t, "Santos Cruz", customer.LastName)
	assert.Equal(t, domain.RoleCustomer, customer.Role)
	require.NotNil(t, customer.GoogleID)
	assert.Equal(t, "google-sub-1", *customer.GoogleID)
	require.NotNil(t, customer.AuthProvider)
	assert.Equal(t, "oauth2", *customer.AuthProvider)
	assert.NotEmpty(t, customer.PasswordHash)
	assert.NotEmpty(t, token)

	cart, err := carts.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	stored, err := customers.GetByEmail(ctx, "maria.santos@example.com")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, stored.ID)
}

func TestOAuthLoginDerivesUniqueUsername(t *testing.T) {
	svc, customers, _ := newTestOAuthService(t)
	ctx := context.Background()

	require.NoError(t, customers.Create(ctx, &domain.Customer{
		Username: "maria", Email: "other@example.com", Role: domain.RoleCustomer,
	}))

	customer, _, _, err := svc.Login(ctx, GoogleIdentity{
		Email:   "maria@example.com",
		Name:    "Maria",
		Subject: "google-sub-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria1", customer.Username)
	assert.Equal(t, "Maria", customer.FirstName)
	assert.Equal(t, "", customer.LastName)
}

func TestOAuthLoginAttachesProviderIDOnce(t *testing.T) {
	svc, customers, _ := newTestOAuthService(t)
	ctx := context.Background()

	// Existing password-signup account with the same email and no provider id.
	require.NoError(t, customers.Create(ctx, &domain.Customer{
		Username: "jess", Email: "jess@example.com", Role: domain.RoleCustomer,
	}))

	first, _, _, err := svc.Login(ctx, GoogleIdentity{
		Email: "jess@example.com", Name: "Jess Lee", Subject: "google-sub-3",
	})
	require.NoError(t, err)
	require.NotNil(t, first.GoogleID)
	assert.Equal(t, "google-sub-3", *first.GoogleID)
	assert.Equal(t, "jess", first.Username)

	// A second login finds the link already present and writes nothing.
	second, _, _, err := svc.Login(ctx, GoogleIdentity{
		Email: "jess@example.com", Name: "Jess Lee", Subject: "google-sub-3",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.GoogleID)
	assert.Equal(t, "google-sub-3", *second.GoogleID)

	all, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
