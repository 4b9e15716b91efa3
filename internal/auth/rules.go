package auth

import (
	"net/http"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// DefaultRules is the static route authorization table, defined once at
// process start and immutable thereafter. Routes absent from the table fall
// back to authenticated-only.
func DefaultRules() []Rule {
	public := func(pattern string) Rule {
		return Rule{Pattern: pattern, Access: AccessPublic}
	}
	customer := func(pattern string) Rule {
		return Rule{Pattern: pattern, Access: AccessRole, Roles: []domain.Role{domain.RoleCustomer}}
	}
	admin := func(pattern string) Rule {
		return Rule{Pattern: pattern, Access: AccessRole, Roles: []domain.Role{domain.RoleAdmin}}
	}
	shared := func(pattern string) Rule {
		return Rule{Pattern: pattern, Access: AccessRole, Roles: []domain.Role{domain.RoleCustomer, domain.RoleAdmin}}
	}

	return []Rule{
		// Public surface: signup, logins, catalog reads, review reads, OAuth.
		public("/"),
		public("/users/signup"),
		public("/users/login"),
		public("/admin/login"),
		{Method: http.MethodGet, Pattern: "/api/product/getProduct", Access: AccessPublic},
		{Method: http.MethodGet, Pattern: "/api/product/getProduct/:id", Access: AccessPublic},
		{Method: http.MethodGet, Pattern: "/api/review/getReview", Access: AccessPublic},
		{Method: http.MethodGet, Pattern: "/api/review/getReview/:id", Access: AccessPublic},
		{Method: http.MethodGet, Pattern: "/api/review/getReviewsByProductId/:productId", Access: AccessPublic},
		public("/oauth2/authorization/google"),
		public("/login/oauth2/code/google"),
		public("/health/**"),

		// Own profile: any authenticated account.
		{Pattern: "/users/me", Access: AccessAuthenticated},

		// Customer surface.
		customer("/users/user/:id"),
		customer("/appointments/postAppointment"),
		customer("/appointments/byUserEmail/:email"),
		customer("/adresses/users/:userId"),
		customer("/adresses/get-users/:userId"),
		customer("/adresses/del-users/:userId"),
		customer("/api/cart/**"),
		customer("/api/cartItem/**"),
		customer("/api/order/postOrderRecord"),
		customer("/api/order/putOrderDetails"),
		customer("/api/order/deleteOrderDetails/:id"),
		customer("/api/order/getAllOrdersByUserId"),
		customer("/api/orderItem/postOrderItemRecord"),
		customer("/api/payment/create-payment-link/:orderId"),
		customer("/api/payment/verify/:orderId"),
		customer("/api/review/postReview"),
		customer("/api/review/putReview/:id"),
		customer("/api/review/deleteReview/:id"),

		// Shared between the two roles; declared for both rather than implied
		// by hierarchy.
		shared("/api/order/getOrderDetails/:orderID"),
		shared("/api/orderItem/putOrderItemDetails"),

		// Admin surface.
		admin("/admin/**"),
		admin("/users/all"),
		admin("/adresses/getAllAddress"),
		admin("/appointments/getAppointment"),
		admin("/appointments/confirm/:appId"),
		admin("/appointments/cancel/:appId"),
		admin("/appointments/deleteAppointment/:appId"),
		admin("/api/product/postProduct"),
		admin("/api/product/putProduct/:id"),
		admin("/api/product/deleteProduct/:id"),
		admin("/api/product/getTotalQuantitySold"),
		admin("/api/order/getAllOrders"),
		admin("/api/order/get-total-income"),
		admin("/api/orderItem/getAllOrdersItem"),
		admin("/api/orderItem/deleteOrderItemDetails/:id"),
	}
}
