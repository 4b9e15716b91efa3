package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// PaymentsHandler exposes the payment-link endpoints.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// CreateLink handles POST /api/payment/create-payment-link/:orderId.
func (h *PaymentsHandler) CreateLink(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil {
		return apperrors.NewValidationError("invalid order id", nil)
	}
	link, err := h.payments.CreateLink(c.UserContext(), int64(orderID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": link})
}

// Verify handles GET /api/payment/verify/:orderId.
func (h *PaymentsHandler) Verify(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil {
		return apperrors.NewValidationError("invalid order id", nil)
	}
	link, err := h.payments.Verify(c.UserContext(), int64(orderID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": link})
}
