package dto

import (
	"time"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// CartItemRequest payload for adding a product to a cart.
type CartItemRequest struct {
	CartID    int64 `json:"cartId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartItemQuantityRequest payload for quantity edits.
type CartItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse is a cart line view.
type CartItemResponse struct {
	ID          int64     `json:"cartItemId"`
	CartID      int64     `json:"cartId"`
	ProductID   int64     `json:"productId"`
	Quantity    int       `json:"quantity"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// CartResponse is a cart with its lines.
type CartResponse struct {
	ID    int64              `json:"cartId"`
	Items []CartItemResponse `json:"cartItems"`
}

// NewCartItemResponse maps a cart line to its response view.
func NewCartItemResponse(item *domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:          item.ID,
		CartID:      item.CartID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		LastUpdated: item.LastUpdated,
	}
}

// NewCartResponse maps a cart to its response view.
func NewCartResponse(cart *domain.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		items = append(items, NewCartItemResponse(&cart.Items[i]))
	}
	return CartResponse{ID: cart.ID, Items: items}
}
