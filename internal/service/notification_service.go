package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/events"
)

// Notification is a queued outbound message awaiting delivery.
type Notification struct {
	EventID   string
	EventType events.EventType
	SubjectID int64
	CreatedAt time.Time
	Payload   any
}

// NotificationService turns domain events into queued notifications. Delivery
// happens off the request path in the worker.
type NotificationService struct {
	logger *zap.Logger

	mu    sync.Mutex
	queue []Notification
}

// NewNotificationService builds the service and wires it to the dispatcher.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	s := &NotificationService{logger: logger}

	for _, eventType := range []events.EventType{
		events.EventOrderPlaced,
		events.EventOrderStatusChanged,
		events.EventAppointmentBooked,
		events.EventAppointmentConfirmed,
		events.EventAppointmentCanceled,
		events.EventReviewPosted,
	} {
		dispatcher.Subscribe(eventType, s.enqueue)
	}
	return s
}

func (s *NotificationService) enqueue(_ context.Context, event events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, Notification{
		EventID:   event.ID,
		EventType: event.Type,
		SubjectID: event.SubjectID,
		CreatedAt: event.Timestamp,
		Payload:   event.Payload,
	})
	return nil
}

// Drain removes and returns everything queued so far.
func (s *NotificationService) Drain() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	drained := s.queue
	s.queue = nil
	return drained
}

// Deliver sends one notification. The current transport only logs; SMTP or a
// push provider slots in here.
func (s *NotificationService) Deliver(_ context.Context, n Notification) error {
	s.logger.Info("notification delivered",
		zap.String("event_id", n.EventID),
		zap.String("event_type", string(n.EventType)),
		zap.Int64("subject_id", n.SubjectID))
	return nil
}
