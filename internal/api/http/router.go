package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/http/handlers"
	"github.com/pawtopia/petshop-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Users        *handlers.UsersHandler
	Admin        *handlers.AdminHandler
	Products     *handlers.ProductsHandler
	Carts        *handlers.CartsHandler
	Orders       *handlers.OrdersHandler
	Appointments *handlers.AppointmentsHandler
	Reviews      *handlers.ReviewsHandler
	Addresses    *handlers.AddressesHandler
	Payments     *handlers.PaymentsHandler
	OAuth        *handlers.OAuthHandler
	Gate         *auth.Gate
	Policy       *auth.Policy
}

// RegisterRoutes wires HTTP routes. Authentication and authorization are
// global: the gate validates any presented token and the policy decides, per
// method and path, whether the request may proceed.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gate.Handle)
	app.Use(cfg.Policy.Enforce())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "petshop-api"})
	})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/users")
	users.Post("/signup", cfg.Users.Signup)
	users.Post("/login", cfg.Users.Login)
	users.Get("/me", cfg.Users.Me)
	users.Get("/all", cfg.Users.List)
	users.Get("/user/:id", cfg.Users.Get)
	users.Put("/user/:id", cfg.Users.Update)
	users.Delete("/user/:id", cfg.Users.Delete)

	admin := app.Group("/admin")
	admin.Post("/login", cfg.Admin.Login)
	admin.Post("/add", cfg.Admin.Add)
	admin.Get("/all", cfg.Admin.List)
	admin.Put("/update/:userId", cfg.Admin.Update)
	admin.Delete("/delete/:userId", cfg.Admin.Delete)

	addresses := app.Group("/adresses") // spelling kept for storefront compatibility
	addresses.Post("/users/:userId", cfg.Addresses.Upsert)
	addresses.Get("/get-users/:userId", cfg.Addresses.Get)
	addresses.Delete("/del-users/:userId", cfg.Addresses.Delete)
	addresses.Get("/getAllAddress", cfg.Addresses.List)

	appointments := app.Group("/appointments")
	appointments.Post("/postAppointment", cfg.Appointments.Book)
	appointments.Get("/getAppointment", cfg.Appointments.List)
	appointments.Get("/byUserEmail/:email", cfg.Appointments.ListByEmail)
	appointments.Put("/confirm/:appId", cfg.Appointments.Confirm)
	appointments.Put("/cancel/:appId", cfg.Appointments.Cancel)
	appointments.Delete("/deleteAppointment/:appId", cfg.Appointments.Delete)

	product := app.Group("/api/product")
	product.Post("/postProduct", cfg.Products.Create)
	product.Put("/putProduct/:id", cfg.Products.Update)
	product.Delete("/deleteProduct/:id", cfg.Products.Delete)
	product.Get("/getProduct", cfg.Products.List)
	product.Get("/getProduct/:id", cfg.Products.Get)
	product.Get("/getTotalQuantitySold", cfg.Products.TotalQuantitySold)

	cart := app.Group("/api/cart")
	cart.Get("/getCart/:id", cfg.Carts.Get)
	cart.Get("/getAllCarts", cfg.Carts.List)
	cart.Delete("/deleteCart/:id", cfg.Carts.Delete)

	cartItem := app.Group("/api/cartItem")
	cartItem.Post("/postCartItem", cfg.Carts.AddItem)
	cartItem.Get("/getCartItem/:id", cfg.Carts.GetItem)
	cartItem.Get("/getAllCartItems", cfg.Carts.ListItems)
	cartItem.Put("/putCartItem/:id", cfg.Carts.UpdateItemQuantity)
	cartItem.Delete("/deleteCartItem/:id", cfg.Carts.RemoveItem)

	order := app.Group("/api/order")
	order.Post("/postOrderRecord", cfg.Orders.Place)
	order.Put("/putOrderDetails", cfg.Orders.Update)
	order.Delete("/deleteOrderDetails/:id", cfg.Orders.Delete)
	order.Get("/getOrderDetails/:orderID", cfg.Orders.Get)
	order.Get("/getAllOrders", cfg.Orders.List)
	order.Get("/getAllOrdersByUserId", cfg.Orders.ListByUser)
	order.Get("/get-total-income", cfg.Orders.TotalIncome)

	orderItem := app.Group("/api/orderItem")
	orderItem.Post("/postOrderItemRecord", cfg.Orders.CreateItem)
	orderItem.Put("/putOrderItemDetails", cfg.Orders.UpdateItem)
	orderItem.Get("/getAllOrdersItem", cfg.Orders.ListItems)
	orderItem.Delete("/deleteOrderItemDetails/:id", cfg.Orders.DeleteItem)

	review := app.Group("/api/review")
	review.Post("/postReview", cfg.Reviews.Post)
	review.Get("/getReview", cfg.Reviews.List)
	review.Get("/getReview/:id", cfg.Reviews.Get)
	review.Get("/getReviewsByProductId/:productId", cfg.Reviews.ListByProduct)
	review.Put("/putReview/:id", cfg.Reviews.Update)
	review.Delete("/deleteReview/:id", cfg.Reviews.Delete)

	payment := app.Group("/api/payment")
	payment.Post("/create-payment-link/:orderId", cfg.Payments.CreateLink)
	payment.Get("/verify/:orderId", cfg.Payments.Verify)

	app.Get("/oauth2/authorization/google", cfg.OAuth.Authorize)
	app.Get("/login/oauth2/code/google", cfg.OAuth.Callback)
}
