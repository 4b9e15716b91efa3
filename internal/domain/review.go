package domain

import "time"

// ProductReview is a customer rating for a purchased product. One review per
// (customer, product); the purchase must belong to an approved order.
type ProductReview struct {
	ID         int64
	ProductID  int64
	CustomerID int64
	OrderID    int64
	Ratings    int
	Comment    string
	Username   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
