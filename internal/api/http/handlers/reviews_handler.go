package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/dto"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// ReviewsHandler exposes the product review endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviews *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

// Post handles POST /api/review/postReview.
func (h *ReviewsHandler) Post(c *fiber.Ctx) error {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	review, err := h.reviews.Post(c.UserContext(), &domain.ProductReview{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		OrderID:    req.OrderID,
		Ratings:    req.Ratings,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewReviewResponse(review)})
}

// Get handles GET /api/review/getReview/:id.
func (h *ReviewsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid review id", nil)
	}
	review, err := h.reviews.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReviewResponse(review)})
}

// List handles GET /api/review/getReview.
func (h *ReviewsHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviews.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reviewResponses(reviews)})
}

// ListByProduct handles GET /api/review/getReviewsByProductId/:productId.
func (h *ReviewsHandler) ListByProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return apperrors.NewValidationError("invalid product id", nil)
	}
	reviews, err := h.reviews.ListByProductID(c.UserContext(), int64(productID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reviewResponses(reviews)})
}

// Update handles PUT /api/review/putReview/:id.
func (h *ReviewsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid review id", nil)
	}
	var req dto.ReviewUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	review, err := h.reviews.Update(c.UserContext(), &domain.ProductReview{
		ID:      int64(id),
		Ratings: req.Ratings,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReviewResponse(review)})
}

// Delete handles DELETE /api/review/deleteReview/:id.
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid review id", nil)
	}
	if err := h.reviews.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func reviewResponses(reviews []domain.ProductReview) []dto.ReviewResponse {
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, dto.NewReviewResponse(&reviews[i]))
	}
	return out
}
