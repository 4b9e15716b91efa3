package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/dto"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// OrdersHandler exposes the order and order-line endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Place handles POST /api/order/postOrderRecord.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CustomerID == 0 {
		return apperrors.NewValidationError("userId required", nil)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order, err := h.orders.Place(c.UserContext(), &domain.Order{
		CustomerID:    req.CustomerID,
		OrderDate:     req.OrderDate,
		PaymentMethod: req.PaymentMethod,
		OrderStatus:   req.OrderStatus,
		Description:   req.Description,
		Remarks:       req.Remarks,
		Items:         items,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// Update handles PUT /api/order/putOrderDetails.
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	var req dto.OrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID == 0 {
		return apperrors.NewValidationError("orderId required", nil)
	}

	order, err := h.orders.Update(c.UserContext(), &domain.Order{
		ID:            req.ID,
		OrderDate:     req.OrderDate,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		OrderStatus:   req.OrderStatus,
		TotalPrice:    req.TotalPrice,
		Description:   req.Description,
		Remarks:       req.Remarks,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// Delete handles DELETE /api/order/deleteOrderDetails/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid order id", nil)
	}
	if err := h.orders.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get handles GET /api/order/getOrderDetails/:orderID.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("orderID")
	if err != nil {
		return apperrors.NewValidationError("invalid order id", nil)
	}
	order, err := h.orders.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// List handles GET /api/order/getAllOrders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponses(orders)})
}

// ListByUser handles GET /api/order/getAllOrdersByUserId.
func (h *OrdersHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.QueryInt("userId")
	if userID == 0 {
		return apperrors.NewValidationError("userId required", nil)
	}
	orders, err := h.orders.ListByCustomerID(c.UserContext(), int64(userID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponses(orders)})
}

// TotalIncome handles GET /api/order/get-total-income.
func (h *OrdersHandler) TotalIncome(c *fiber.Ctx) error {
	total, err := h.orders.TotalIncome(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"totalIncome": total}})
}

// CreateItem handles POST /api/orderItem/postOrderItemRecord.
func (h *OrdersHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.OrderItemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item := &domain.OrderItem{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Rated:     req.Rated,
	}
	created, err := h.orders.CreateItem(c.UserContext(), item)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewOrderItemResponse(created)})
}

// UpdateItem handles PUT /api/orderItem/putOrderItemDetails.
func (h *OrdersHandler) UpdateItem(c *fiber.Ctx) error {
	var req dto.OrderItemUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID == 0 {
		return apperrors.NewValidationError("orderItemId required", nil)
	}

	item, err := h.orders.UpdateItem(c.UserContext(), &domain.OrderItem{
		ID:       req.ID,
		Name:     req.Name,
		Image:    req.Image,
		Price:    req.Price,
		Quantity: req.Quantity,
		Rated:    req.Rated,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderItemResponse(item)})
}

// ListItems handles GET /api/orderItem/getAllOrdersItem.
func (h *OrdersHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.orders.ListItems(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.OrderItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewOrderItemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// DeleteItem handles DELETE /api/orderItem/deleteOrderItemDetails/:id.
func (h *OrdersHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid order item id", nil)
	}
	if err := h.orders.DeleteItem(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func orderResponses(orders []domain.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	return out
}
