package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/dto"
	"github.com/pawtopia/petshop-api/internal/auth"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// UsersHandler exposes customer signup, login, profile and address endpoints.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, users *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: users}
}

// Signup handles POST /users/signup.
func (h *UsersHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return apperrors.NewValidationError("username, password and email required", nil)
	}

	customer := &domain.Customer{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	created, err := h.auth.Signup(c.UserContext(), customer, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"user": dto.NewUserResponse(created)},
	})
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	account, token, exp, err := h.auth.Login(c.UserContext(), domain.AccountKindCustomer, req.Username, req.Password)
	if err != nil {
		return err
	}
	customer, ok := account.(*domain.Customer)
	if !ok {
		return apperrors.NewInternalError(nil)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(customer),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Me handles GET /users/me. Admin sessions have no customer profile; they get
// the session view only.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if session.HasRole(domain.RoleAdmin) {
		return c.JSON(fiber.Map{
			"data": fiber.Map{"username": session.Username, "role": string(domain.RoleAdmin)},
		})
	}

	customer, err := h.users.GetByUsername(c.UserContext(), session.Username)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(customer)})
}

// Get handles GET /users/user/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	customer, err := h.users.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(customer)})
}

// Update handles PUT /users/user/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer, err := h.users.Update(c.UserContext(), int64(id), service.CustomerUpdate{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(customer)})
}

// Delete handles DELETE /users/user/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}
	if err := h.users.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List handles GET /users/all.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	customers, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.UserResponse, 0, len(customers))
	for i := range customers {
		out = append(out, dto.NewUserResponse(&customers[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}
