package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawtopia/petshop-api/internal/api/dto"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// AppointmentsHandler exposes the grooming booking endpoints.
type AppointmentsHandler struct {
	appointments *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointments *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments}
}

// Book handles POST /appointments/postAppointment.
func (h *AppointmentsHandler) Book(c *fiber.Ctx) error {
	var req dto.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	appointment, err := h.appointments.Book(c.UserContext(), &domain.Appointment{
		Email:        req.Email,
		ContactNo:    req.ContactNo,
		Date:         req.Date,
		Time:         req.Time,
		GroomService: req.GroomService,
		Price:        req.Price,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}

// List handles GET /appointments/getAppointment.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	appointments, err := h.appointments.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, dto.NewAppointmentResponse(&appointments[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// ListByEmail handles GET /appointments/byUserEmail/:email.
func (h *AppointmentsHandler) ListByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	appointments, err := h.appointments.ListByEmail(c.UserContext(), email)
	if err != nil {
		return err
	}
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, dto.NewAppointmentResponse(&appointments[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Confirm handles PUT /appointments/confirm/:appId.
func (h *AppointmentsHandler) Confirm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("appId")
	if err != nil {
		return apperrors.NewValidationError("invalid appointment id", nil)
	}
	appointment, err := h.appointments.Confirm(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}

// Cancel handles PUT /appointments/cancel/:appId.
func (h *AppointmentsHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("appId")
	if err != nil {
		return apperrors.NewValidationError("invalid appointment id", nil)
	}
	appointment, err := h.appointments.Cancel(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}

// Delete handles DELETE /appointments/deleteAppointment/:appId.
func (h *AppointmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("appId")
	if err != nil {
		return apperrors.NewValidationError("invalid appointment id", nil)
	}
	if err := h.appointments.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
