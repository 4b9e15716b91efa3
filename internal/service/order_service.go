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

// Storefront copy stamped on orders placed without their own text.
const (
	defaultOrderDescription = "A Great Way to Spend Money to your Pets!"
	defaultOrderRemarks     = "Shop Again!"
)

// OrderService covers order placement, lifecycle updates, the per-line CRUD
// and the admin income aggregate.
type OrderService struct {
	orders     repository.OrderRepository
	orderItems repository.OrderItemRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, orderItems repository.OrderItemRepository,
	products repository.ProductRepository, dispatcher events.Dispatcher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:     orders,
		orderItems: orderItems,
		products:   products,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Place records an order. Each line snapshots the product's current name,
// image and price; stock is decremented and quantity_sold incremented per
// line. The adjustments are not serialized against concurrent placements, so
// counters can drift under contention.
func (s *OrderService) Place(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if len(order.Items) == 0 {
		return nil, apperrors.NewValidationError("order must contain at least one item", nil)
	}

	var total float64
	for i := range order.Items {
		item := &order.Items[i]
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidationError("item quantity must be positive", nil)
		}

		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Quantity < item.Quantity {
			return nil, apperrors.NewValidationError("insufficient stock for product: "+product.Name, nil)
		}

		item.Name = product.Name
		item.Image = product.Image
		item.Price = product.Price
		item.Rated = false
		total += product.Price * float64(item.Quantity)

		product.Quantity -= item.Quantity
		product.QuantitySold += item.Quantity
		if err := s.products.Update(ctx, product); err != nil {
			return nil, err
		}
	}

	order.Reference = uuid.NewString()
	order.TotalPrice = total
	order.PaymentStatus = domain.PaymentStatusPending
	if order.Description == "" {
		order.Description = defaultOrderDescription
	}
	if order.Remarks == "" {
		order.Remarks = defaultOrderRemarks
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventOrderPlaced, order.ID, events.OrderPlacedPayload{
		CustomerID: order.CustomerID,
		TotalPrice: order.TotalPrice,
		ItemCount:  len(order.Items),
	})
	s.logger.Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", order.CustomerID),
		zap.Float64("total_price", order.TotalPrice))
	return order, nil
}

// GetByID returns one order with its lines.
func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// List returns every order.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// ListByCustomerID returns one customer's orders.
func (s *OrderService) ListByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return s.orders.ListByCustomerID(ctx, customerID)
}

// Update replaces an order's mutable fields, emitting a status-change event
// when the order status moved.
func (s *OrderService) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	current, err := s.orders.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	if current.OrderStatus != order.OrderStatus {
		s.publish(ctx, events.EventOrderStatusChanged, order.ID, events.OrderStatusChangedPayload{
			OldStatus: current.OrderStatus,
			NewStatus: order.OrderStatus,
		})
	}
	return s.orders.GetByID(ctx, order.ID)
}

// Delete removes an order and, via cascade, its lines.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

// TotalIncome sums total_price across all orders.
func (s *OrderService) TotalIncome(ctx context.Context) (float64, error) {
	return s.orders.TotalIncome(ctx)
}

// CreateItem appends a standalone line to an existing order. Unlike
// placement it performs no stock adjustment.
func (s *OrderService) CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if item.Quantity <= 0 {
		return nil, apperrors.NewValidationError("item quantity must be positive", nil)
	}
	if _, err := s.orders.GetByID(ctx, item.OrderID); err != nil {
		return nil, err
	}
	if err := s.orderItems.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns one order line.
func (s *OrderService) GetItem(ctx context.Context, id int64) (*domain.OrderItem, error) {
	return s.orderItems.GetByID(ctx, id)
}

// ListItems returns every order line.
func (s *OrderService) ListItems(ctx context.Context) ([]domain.OrderItem, error) {
	return s.orderItems.List(ctx)
}

// UpdateItem replaces an order line; the storefront uses it to flip the rated
// flag after a review is posted.
func (s *OrderService) UpdateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if err := s.orderItems.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.orderItems.GetByID(ctx, item.ID)
}

// DeleteItem removes one order line.
func (s *OrderService) DeleteItem(ctx context.Context, id int64) error {
	return s.orderItems.Delete(ctx, id)
}

func (s *OrderService) publish(ctx context.Context, eventType events.EventType, subjectID int64, payload any) {
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
