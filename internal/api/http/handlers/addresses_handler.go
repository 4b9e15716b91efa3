package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/dto"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// AddressesHandler exposes the delivery-address endpoints.
type AddressesHandler struct {
	users *service.UserService
}

// NewAddressesHandler constructs handler.
func NewAddressesHandler(users *service.UserService) *AddressesHandler {
	return &AddressesHandler{users: users}
}

// Upsert handles POST /adresses/users/:userId.
func (h *AddressesHandler) Upsert(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	address, err := h.users.UpsertAddress(c.UserContext(), int64(userID), &domain.Address{
		Region:     req.Region,
		Province:   req.Province,
		City:       req.City,
		Barangay:   req.Barangay,
		PostalCode: req.PostalCode,
		Street:     req.Street,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAddressResponse(address)})
}

// Get handles GET /adresses/get-users/:userId.
func (h *AddressesHandler) Get(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	address, err := h.users.GetAddress(c.UserContext(), int64(userID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAddressResponse(address)})
}

// Delete handles DELETE /adresses/del-users/:userId.
func (h *AddressesHandler) Delete(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	if err := h.users.DeleteAddress(c.UserContext(), int64(userID)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List handles GET /adresses/getAllAddress.
func (h *AddressesHandler) List(c *fiber.Ctx) error {
	addresses, err := h.users.ListAddresses(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		out = append(out, dto.NewAddressResponse(&addresses[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}
