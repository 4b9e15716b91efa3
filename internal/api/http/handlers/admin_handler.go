package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/dto"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// AdminHandler exposes the back-office account endpoints.
type AdminHandler struct {
	auth *service.AuthService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService) *AdminHandler {
	return &AdminHandler{auth: authService}
}

// Login handles POST /admin/login. Hitting this endpoint selects the admin
// credential store; the same username in the customer store is not consulted.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	account, token, exp, err := h.auth.Login(c.UserContext(), domain.AccountKindAdmin, req.Username, req.Password)
	if err != nil {
		return err
	}
	admin, ok := account.(*domain.Admin)
	if !ok {
		return apperrors.NewInternalError(nil)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"admin": dto.AdminResponse{ID: admin.ID, Username: admin.Username, Role: string(admin.Role)},
			"auth":  dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Add handles POST /admin/add.
func (h *AdminHandler) Add(c *fiber.Ctx) error {
	var req dto.AdminCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	admin, err := h.auth.CreateAdmin(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": dto.AdminResponse{ID: admin.ID, Username: admin.Username, Role: string(admin.Role)},
	})
}

// List handles GET /admin/all.
func (h *AdminHandler) List(c *fiber.Ctx) error {
	admins, err := h.auth.ListAdmins(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, dto.AdminResponse{
			ID:       admins[i].ID,
			Username: admins[i].Username,
			Role:     string(admins[i].Role),
		})
	}
	return c.JSON(fiber.Map{"data": out})
}

// Update handles PUT /admin/update/:userId.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.NewValidationError("invalid admin id", nil)
	}
	var req dto.AdminUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" && req.Password == "" {
		return apperrors.NewValidationError("nothing to update", nil)
	}

	admin, err := h.auth.UpdateAdmin(c.UserContext(), int64(id), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.AdminResponse{ID: admin.ID, Username: admin.Username, Role: string(admin.Role)},
	})
}

// Delete handles DELETE /admin/delete/:userId.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.NewValidationError("invalid admin id", nil)
	}
	if err := h.auth.DeleteAdmin(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
