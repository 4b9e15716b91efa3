package service

import (
	"context"

	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/repository"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// ProductService covers catalog reads and the admin-side catalog management.
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService builds the service.
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create adds a catalog item.
func (s *ProductService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}
	if product.Quantity < 0 {
		return nil, apperrors.NewValidationError("quantity must not be negative", nil)
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces a catalog item's mutable fields.
func (s *ProductService) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, product.ID)
}

// Delete removes a catalog item.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}

// GetByID returns one catalog item.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// List returns the whole catalog.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// TotalQuantitySold aggregates units sold across the catalog.
func (s *ProductService) TotalQuantitySold(ctx context.Context) (int, error) {
	return s.products.TotalQuantitySold(ctx)
}
