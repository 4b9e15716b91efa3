package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/dto"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// CartsHandler exposes the cart and cart-line endpoints.
type CartsHandler struct {
	carts *service.CartService
}

// NewCartsHandler constructs handler.
func NewCartsHandler(carts *service.CartService) *CartsHandler {
	return &CartsHandler{carts: carts}
}

// Get handles GET /api/cart/getCart/:id. The cart id equals the customer id.
func (h *CartsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid cart id", nil)
	}
	cart, err := h.carts.GetCart(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCartResponse(cart)})
}

// List handles GET /api/cart/getAllCarts.
func (h *CartsHandler) List(c *fiber.Ctx) error {
	carts, err := h.carts.ListCarts(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.CartResponse, 0, len(carts))
	for i := range carts {
		out = append(out, dto.NewCartResponse(&carts[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Delete handles DELETE /api/cart/deleteCart/:id.
func (h *CartsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid cart id", nil)
	}
	if err := h.carts.DeleteCart(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem handles POST /api/cartItem/postCartItem.
func (h *CartsHandler) AddItem(c *fiber.Ctx) error {
	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.carts.AddItem(c.UserContext(), &domain.CartItem{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewCartItemResponse(item)})
}

// GetItem handles GET /api/cartItem/getCartItem/:id.
func (h *CartsHandler) GetItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid cart item id", nil)
	}
	item, err := h.carts.GetItem(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCartItemResponse(item)})
}

// ListItems handles GET /api/cartItem/getAllCartItems.
func (h *CartsHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.carts.ListItems(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewCartItemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// UpdateItemQuantity handles PUT /api/cartItem/putCartItem/:id. The system
// query flag marks a server-side adjustment that should not refresh the line's
// last_updated timestamp.
func (h *CartsHandler) UpdateItemQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid cart item id", nil)
	}
	var req dto.CartItemQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	touch := c.Query("system") != "true"

	item, err := h.carts.UpdateItemQuantity(c.UserContext(), int64(id), req.Quantity, touch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCartItemResponse(item)})
}

// RemoveItem handles DELETE /api/cartItem/deleteCartItem/:id.
func (h *CartsHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid cart item id", nil)
	}
	if err := h.carts.RemoveItem(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
