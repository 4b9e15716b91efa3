package domain

import "time"

// Order payment lifecycle values.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

// Order status value required before a purchased product may be reviewed.
const OrderStatusApproved = "APPROVED"

// Order is a placed purchase. Description and Remarks feed the payment-link
// request verbatim.
type Order struct {
	ID            int64
	Reference     string
	CustomerID    int64
	OrderDate     string
	PaymentMethod string
	PaymentStatus string
	OrderStatus   string
	TotalPrice    float64
	Description   string
	Remarks       string
	PaymentLinkID *string
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem is a purchased line; it snapshots the product name, image and
// price at purchase time.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Name      string
	Image     string
	Price     float64
	Quantity  int
	Rated     bool
}
