package service

import (
	"context"

	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/repository"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// CartService covers carts and their lines. A cart shares its id with the
// owning customer, so the customer id doubles as the cart key everywhere.
type CartService struct {
	carts    repository.CartRepository
	items    repository.CartItemRepository
	products repository.ProductRepository
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository, items repository.CartItemRepository,
	products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, items: items, products: products}
}

// GetCart returns the cart with its lines.
func (s *CartService) GetCart(ctx context.Context, cartID int64) (*domain.Cart, error) {
	return s.carts.GetByID(ctx, cartID)
}

// ListCarts returns every cart.
func (s *CartService) ListCarts(ctx context.Context) ([]domain.Cart, error) {
	return s.carts.List(ctx)
}

// DeleteCart removes the cart and, via cascade, its lines.
func (s *CartService) DeleteCart(ctx context.Context, cartID int64) error {
	return s.carts.Delete(ctx, cartID)
}

// AddItem appends a line to the cart after checking the cart and product
// exist. The referenced product must have stock left.
func (s *CartService) AddItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	if item.Quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be positive", nil)
	}
	if _, err := s.carts.GetByID(ctx, item.CartID); err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Quantity <= 0 {
		return nil, apperrors.NewValidationError("product is out of stock", nil)
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns one cart line.
func (s *CartService) GetItem(ctx context.Context, id int64) (*domain.CartItem, error) {
	return s.items.GetByID(ctx, id)
}

// ListItems returns every cart line.
func (s *CartService) ListItems(ctx context.Context) ([]domain.CartItem, error) {
	return s.items.List(ctx)
}

// UpdateItemQuantity sets a line's quantity. touch distinguishes the shopper
// edit (refreshes last_updated) from the system adjustment (leaves it alone).
func (s *CartService) UpdateItemQuantity(ctx context.Context, id int64, quantity int, touch bool) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be positive", nil)
	}
	return s.items.UpdateQuantity(ctx, id, quantity, touch)
}

// RemoveItem deletes one cart line.
func (s *CartService) RemoveItem(ctx context.Context, id int64) error {
	return s.items.Delete(ctx, id)
}
