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

// AppointmentService covers grooming bookings and their admin lifecycle.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewAppointmentService builds the service.
func NewAppointmentService(appointments repository.AppointmentRepository,
	dispatcher events.Dispatcher, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{appointments: appointments, dispatcher: dispatcher, logger: logger}
}

// Book records a new appointment. Bookings start neither confirmed nor
// canceled.
func (s *AppointmentService) Book(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.Email == "" {
		return nil, apperrors.NewValidationError("email is required", nil)
	}
	if appointment.GroomService == "" {
		return nil, apperrors.NewValidationError("groom service is required", nil)
	}

	appointment.Confirmed = false
	appointment.Canceled = false
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventAppointmentBooked, appointment)
	return appointment, nil
}

// GetByID returns one appointment.
func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// List returns every appointment.
func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.List(ctx)
}

// ListByEmail returns the bookings made under one email address.
func (s *AppointmentService) ListByEmail(ctx context.Context, email string) ([]domain.Appointment, error) {
	return s.appointments.ListByEmail(ctx, email)
}

// Confirm flips the confirmed flag on.
func (s *AppointmentService) Confirm(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	appointment.Confirmed = true
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventAppointmentConfirmed, appointment)
	return appointment, nil
}

// Cancel flips the canceled flag on.
func (s *AppointmentService) Cancel(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	appointment.Canceled = true
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventAppointmentCanceled, appointment)
	return appointment, nil
}

// Delete removes an appointment.
func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	return s.appointments.Delete(ctx, id)
}

func (s *AppointmentService) publish(ctx context.Context, eventType events.EventType, appointment *domain.Appointment) {
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: appointment.ID,
		Timestamp: time.Now().UTC(),
		Payload: events.AppointmentPayload{
			Email:        appointment.Email,
			GroomService: appointment.GroomService,
			Date:         appointment.Date,
			Time:         appointment.Time,
		},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
