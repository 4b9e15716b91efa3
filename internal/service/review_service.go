package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/events"
	"github.com/pawtopia/petshop-api/internal/repository"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// ReviewService guards and stores product reviews.
type ReviewService struct {
	reviews    repository.ReviewRepository
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewReviewService builds the service.
func NewReviewService(reviews repository.ReviewRepository, orders repository.OrderRepository,
	dispatcher events.Dispatcher, logger *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders, dispatcher: dispatcher, logger: logger}
}

// Post stores a review after the purchase guards pass: the rating is 1 to 5,
// the customer has an approved order containing the product, and no earlier
// review by the same customer for the same product exists.
func (s *ReviewService) Post(ctx context.Context, review *domain.ProductReview) (*domain.ProductReview, error) {
	if review.Ratings < 1 || review.Ratings > 5 {
		return nil, apperrors.NewValidationError("ratings must be between 1 and 5", nil)
	}

	purchased, err := s.orders.HasApprovedOrderWithProduct(ctx, review.CustomerID, review.ProductID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, apperrors.NewForbidden("only customers with an approved order for the product may review it")
	}

	exists, err := s.reviews.ExistsByCustomerAndProduct(ctx, review.CustomerID, review.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("product already reviewed by this customer", nil)
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventReviewPosted,
		SubjectID: review.ID,
		Timestamp: time.Now().UTC(),
		Payload: events.ReviewPostedPayload{
			ProductID:  review.ProductID,
			CustomerID: review.CustomerID,
			Ratings:    review.Ratings,
		},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("event_type", string(events.EventReviewPosted)), zap.Error(err))
	}
	return s.reviews.GetByID(ctx, review.ID)
}

// GetByID returns one review.
func (s *ReviewService) GetByID(ctx context.Context, id int64) (*domain.ProductReview, error) {
	return s.reviews.GetByID(ctx, id)
}

// List returns every review.
func (s *ReviewService) List(ctx context.Context) ([]domain.ProductReview, error) {
	return s.reviews.List(ctx)
}

// ListByProductID returns a product's reviews.
func (s *ReviewService) ListByProductID(ctx context.Context, productID int64) ([]domain.ProductReview, error) {
	return s.reviews.ListByProductID(ctx, productID)
}

// Update changes a review's rating or comment.
func (s *ReviewService) Update(ctx context.Context, review *domain.ProductReview) (*domain.ProductReview, error) {
	if review.Ratings < 1 || review.Ratings > 5 {
		return nil, apperrors.NewValidationError("ratings must be between 1 and 5", nil)
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return s.reviews.GetByID(ctx, review.ID)
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	return s.reviews.Delete(ctx, id)
}
