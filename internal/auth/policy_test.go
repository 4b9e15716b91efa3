package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawtopia/petshop-api/internal/domain"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

func adminSession() *domain.AuthSession {
	role := domain.RoleAdmin
	return &domain.AuthSession{Username: "admin1", Role: &role}
}

func customerSession() *domain.AuthSession {
	role := domain.RoleCustomer
	return &domain.AuthSession{Username: "jess", Role: &role}
}

func TestPolicyPublicRoutes(t *testing.T) {
	p := NewPolicy(DefaultRules())

	for _, path := range []string{
		"/",
		"/users/signup",
		"/users/login",
		"/admin/login",
		"/api/product/getProduct",
		"/api/product/getProduct/5",
		"/api/review/getReviewsByProductId/5",
		"/oauth2/authorization/google",
		"/health/live",
		"/health/ready",
	} {
		assert.NoError(t, p.Authorize(http.MethodGet, path, nil), path)
	}
}

func TestPolicyAdminRoutes(t *testing.T) {
	p := NewPolicy(DefaultRules())

	adminPaths := []string{
		"/users/all",
		"/admin/add",
		"/api/product/postProduct",
		"/api/order/getAllOrders",
		"/api/order/get-total-income",
		"/adresses/getAllAddress",
		"/appointments/confirm/3",
	}
	for _, path := range adminPaths {
		err := p.Authorize(http.MethodPost, path, nil)
		require.Error(t, err, path)
		assert.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus, path)

		err = p.Authorize(http.MethodPost, path, customerSession())
		require.Error(t, err, path)
		assert.Equal(t, 403, apperrors.ToDomainError(err).HTTPStatus, path)

		assert.NoError(t, p.Authorize(http.MethodPost, path, adminSession()), path)
	}
}

func TestPolicyCustomerRoutes(t *testing.T) {
	p := NewPolicy(DefaultRules())

	customerPaths := []string{
		"/api/cart/getCart/7",
		"/api/cartItem/postCartItem",
		"/api/order/postOrderRecord",
		"/api/payment/create-payment-link/12",
		"/api/review/postReview",
		"/appointments/postAppointment",
		"/adresses/users/7",
	}
	for _, path := range customerPaths {
		assert.NoError(t, p.Authorize(http.MethodPost, path, customerSession()), path)

		// Roles are disjoint: an admin token does not satisfy customer rules.
		err := p.Authorize(http.MethodPost, path, adminSession())
		require.Error(t, err, path)
		assert.Equal(t, 403, apperrors.ToDomainError(err).HTTPStatus, path)
	}
}

func TestPolicySharedRoutes(t *testing.T) {
	p := NewPolicy(DefaultRules())

	for _, path := range []string{
		"/api/order/getOrderDetails/4",
		"/api/orderItem/putOrderItemDetails",
	} {
		assert.NoError(t, p.Authorize(http.MethodGet, path, customerSession()), path)
		assert.NoError(t, p.Authorize(http.MethodGet, path, adminSession()), path)

		err := p.Authorize(http.MethodGet, path, nil)
		require.Error(t, err, path)
		assert.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus, path)
	}
}

func TestPolicyOptionsAlwaysAllowed(t *testing.T) {
	p := NewPolicy(DefaultRules())

	assert.NoError(t, p.Authorize(http.MethodOptions, "/users/all", nil))
	assert.NoError(t, p.Authorize(http.MethodOptions, "/api/order/getAllOrders", nil))
}

func TestPolicyUnlistedRouteRequiresAuthentication(t *testing.T) {
	p := NewPolicy(DefaultRules())

	err := p.Authorize(http.MethodGet, "/some/unlisted/route", nil)
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)

	assert.NoError(t, p.Authorize(http.MethodGet, "/some/unlisted/route", customerSession()))
	assert.NoError(t, p.Authorize(http.MethodGet, "/some/unlisted/route", adminSession()))
}

func TestPolicyMostSpecificPatternWins(t *testing.T) {
	// /admin/login is public even though /admin/** demands ADMIN: the exact
	// pattern outranks the wildcard.
	p := NewPolicy(DefaultRules())
	assert.NoError(t, p.Authorize(http.MethodPost, "/admin/login", nil))

	err := p.Authorize(http.MethodPost, "/admin/anything/else", nil)
	require.Error(t, err)
}

func TestPolicyMethodScopedRules(t *testing.T) {
	p := NewPolicy(DefaultRules())

	// Catalog reads are public, catalog writes are admin-only even though the
	// paths overlap under /api/product.
	assert.NoError(t, p.Authorize(http.MethodGet, "/api/product/getProduct/3", nil))

	err := p.Authorize(http.MethodPut, "/api/product/putProduct/3", customerSession())
	require.Error(t, err)
	assert.Equal(t, 403, apperrors.ToDomainError(err).HTTPStatus)
}

func TestPolicyParamSegmentsMatchAnyValue(t *testing.T) {
	p := NewPolicy(DefaultRules())

	assert.NoError(t, p.Authorize(http.MethodGet, "/api/review/getReview/42", nil))
	assert.NoError(t, p.Authorize(http.MethodGet, "/api/review/getReview/abc", nil))

	// Without the trailing id the shorter public rule matches instead.
	assert.NoError(t, p.Authorize(http.MethodGet, "/api/review/getReview", nil))
}
