package dto

import "github.com/pawtopia/petshop-api/internal/domain"

// ReviewRequest payload for posting a review.
type ReviewRequest struct {
	ProductID  int64  `json:"productId"`
	CustomerID int64  `json:"userId"`
	OrderID    int64  `json:"orderId"`
	Ratings    int    `json:"ratings"`
	Comment    string `json:"comment"`
}

// ReviewUpdateRequest payload for editing a review.
type ReviewUpdateRequest struct {
	Ratings int    `json:"ratings"`
	Comment string `json:"comment"`
}

// ReviewResponse is the review view, including the reviewer's username for
// display.
type ReviewResponse struct {
	ID         int64  `json:"reviewId"`
	ProductID  int64  `json:"productId"`
	CustomerID int64  `json:"userId"`
	OrderID    int64  `json:"orderId"`
	Ratings    int    `json:"ratings"`
	Comment    string `json:"comment"`
	Username   string `json:"username"`
}

// NewReviewResponse maps a review to its response view.
func NewReviewResponse(r *domain.ProductReview) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		OrderID:    r.OrderID,
		Ratings:    r.Ratings,
		Comment:    r.Comment,
		Username:   r.Username,
	}
}
