package dto

import "github.com/pawtopia/petshop-api/internal/domain"

// OrderItemRequest is one requested purchase line; the server snapshots the
// product details itself.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderRequest payload for placing an order.
type OrderRequest struct {
	CustomerID    int64              `json:"userId"`
	OrderDate     string             `json:"orderDate"`
	PaymentMethod string             `json:"paymentMethod"`
	OrderStatus   string             `json:"orderStatus"`
	Description   string             `json:"description"`
	Remarks       string             `json:"remarks"`
	Items         []OrderItemRequest `json:"orderItems"`
}

// OrderUpdateRequest payload for lifecycle edits.
type OrderUpdateRequest struct {
	ID            int64   `json:"orderId"`
	OrderDate     string  `json:"orderDate"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	OrderStatus   string  `json:"orderStatus"`
	TotalPrice    float64 `json:"totalPrice"`
	Description   string  `json:"description"`
	Remarks       string  `json:"remarks"`
}

// OrderItemResponse is a purchased line view.
type OrderItemResponse struct {
	ID        int64   `json:"orderItemId"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Rated     bool    `json:"rated"`
}

// OrderItemCreateRequest payload for appending a standalone line to an order.
type OrderItemCreateRequest struct {
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Rated     bool    `json:"rated"`
}

// OrderItemUpdateRequest payload for order-line edits (the storefront flips
// the rated flag through it).
type OrderItemUpdateRequest struct {
	ID       int64   `json:"orderItemId"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Rated    bool    `json:"rated"`
}

// OrderResponse is the order view with its lines.
type OrderResponse struct {
	ID            int64               `json:"orderId"`
	Reference     string              `json:"reference"`
	CustomerID    int64               `json:"userId"`
	OrderDate     string              `json:"orderDate"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentStatus string              `json:"paymentStatus"`
	OrderStatus   string              `json:"orderStatus"`
	TotalPrice    float64             `json:"totalPrice"`
	Description   string              `json:"description"`
	Remarks       string              `json:"remarks"`
	PaymentLinkID *string             `json:"paymentLinkId,omitempty"`
	Items         []OrderItemResponse `json:"orderItems"`
}

// NewOrderItemResponse maps an order line to its response view.
func NewOrderItemResponse(item *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Image:     item.Image,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Rated:     item.Rated,
	}
}

// NewOrderResponse maps an order to its response view.
func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		items = append(items, NewOrderItemResponse(&order.Items[i]))
	}
	return OrderResponse{
		ID:            order.ID,
		Reference:     order.Reference,
		CustomerID:    order.CustomerID,
		OrderDate:     order.OrderDate,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		OrderStatus:   order.OrderStatus,
		TotalPrice:    order.TotalPrice,
		Description:   order.Description,
		Remarks:       order.Remarks,
		PaymentLinkID: order.PaymentLinkID,
		Items:         items,
	}
}
