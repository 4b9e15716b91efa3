package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/auth"
	"github.com/pawtopia/petshop-api/internal/config"
	"github.com/pawtopia/petshop-api/internal/domain"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret",
			TokenTTLMinutes:      60,
			BcryptCost:           4,
			DefaultAdminUsername: "admin1",
			DefaultAdminPassword: "admin123",
		},
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeAdminRepo, *fakeCustomerRepo, *fakeCartRepo) {
	t.Helper()
	admins := newFakeAdminRepo()
	customers := newFakeCustomerRepo()
	carts := newFakeCartRepo()
	svc := NewAuthService(testAuthConfig(), AuthDependencies{
		AdminRepo:    admins,
		CustomerRepo: customers,
		CartRepo:     carts,
	}, zap.NewNop())
	return svc, admins, customers, carts
}

func TestSignupProvisionsEmptyCart(t *testing.T) {
	svc, _, _, carts := newTestAuthService(t)

	created, err := svc.Signup(context.Background(), &domain.Customer{
		Username: "jess",
		Email:    "jess@example.com",
	}, "secret")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleCustomer, created.Role)
	assert.NotEqual(t, "secret", created.PasswordHash)

	cart, err := carts.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, cart.ID)
	assert.Empty(t, cart.Items)
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.Signup(context.Background(), &domain.Customer{Username: "jess", Email: "a@b.c"}, "pw")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), &domain.Customer{Username: "jess", Email: "x@y.z"}, "pw")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, "Username already registered!", domainErr.Message)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestLoginVerifiesAgainstSelectedStore(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &domain.Customer{Username: "jess", Email: "a@b.c"}, "right")
	require.NoError(t, err)

	account, token, exp, err := svc.Login(ctx, domain.AccountKindCustomer, "jess", "right")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountKindCustomer, account.Kind())
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	// A customer username resolved against the admin store is unknown.
	_, _, _, err = svc.Login(ctx, domain.AccountKindAdmin, "jess", "right")
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &domain.Customer{Username: "jess", Email: "a@b.c"}, "right")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, domain.AccountKindCustomer, "jess", "wrong")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	assert.Equal(t, 401, domainErr.HTTPStatus)
}

func TestEnsureDefaultAdminIsIdempotent(t *testing.T) {
	svc, admins, _, _ := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx))
	first, err := admins.GetByUsername(ctx, "admin1")
	require.NoError(t, err)
	require.NoError(t, auth.ComparePassword(first.PasswordHash, "admin123"))
	assert.Equal(t, domain.RoleAdmin, first.Role)

	require.NoError(t, svc.EnsureDefaultAdmin(ctx))
	second, err := admins.GetByUsername(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpdateAdminRenamesAndRotatesPassword(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	created, err := svc.CreateAdmin(ctx, "ops", "old-pass")
	require.NoError(t, err)

	updated, err := svc.UpdateAdmin(ctx, created.ID, "ops2", "new-pass")
	require.NoError(t, err)
	assert.Equal(t, "ops2", updated.Username)
	require.NoError(t, auth.ComparePassword(updated.PasswordHash, "new-pass"))

	// Old credentials no longer resolve; new ones log in.
	_, _, _, err = svc.Login(ctx, domain.AccountKindAdmin, "ops", "old-pass")
	require.Error(t, err)
	_, _, _, err = svc.Login(ctx, domain.AccountKindAdmin, "ops2", "new-pass")
	require.NoError(t, err)
}

func TestUpdateAdminRejectsTakenUsername(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "ops", "pw")
	require.NoError(t, err)
	other, err := svc.CreateAdmin(ctx, "other", "pw")
	require.NoError(t, err)

	_, err = svc.UpdateAdmin(ctx, other.ID, "ops", "")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestDeleteAdminRemovesAccount(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	created, err := svc.CreateAdmin(ctx, "ops", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdmin(ctx, created.ID))

	listed, err := svc.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = svc.DeleteAdmin(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}

func TestDefaultAdminCanLogin(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx))

	account, token, _, err := svc.Login(ctx, domain.AccountKindAdmin, "admin1", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountKindAdmin, account.Kind())

	session, err := svc.TokenService().Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin1", session.Username)
	require.NotNil(t, session.Role)
	assert.Equal(t, domain.RoleAdmin, *session.Role)
}
