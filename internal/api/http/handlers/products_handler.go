package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/dto"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// ProductsHandler exposes the catalog endpoints.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// Create handles POST /api/product/postProduct.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	product, err := h.products.Create(c.UserContext(), &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewProductResponse(product)})
}

// Update handles PUT /api/product/putProduct/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid product id", nil)
	}
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	current, err := h.products.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	current.Name = req.Name
	current.Description = req.Description
	current.Type = req.Type
	current.Price = req.Price
	current.Quantity = req.Quantity
	current.Image = req.Image

	product, err := h.products.Update(c.UserContext(), current)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProductResponse(product)})
}

// Delete handles DELETE /api/product/deleteProduct/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid product id", nil)
	}
	if err := h.products.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get handles GET /api/product/getProduct/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid product id", nil)
	}
	product, err := h.products.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProductResponse(product)})
}

// List handles GET /api/product/getProduct.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductResponse(&products[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// TotalQuantitySold handles GET /api/product/getTotalQuantitySold.
func (h *ProductsHandler) TotalQuantitySold(c *fiber.Ctx) error {
	total, err := h.products.TotalQuantitySold(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"totalQuantitySold": total}})
}
