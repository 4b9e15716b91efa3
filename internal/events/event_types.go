package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderPlaced          EventType = "order_placed"
	EventOrderStatusChanged   EventType = "order_status_changed"
	EventAppointmentBooked    EventType = "appointment_booked"
	EventAppointmentConfirmed EventType = "appointment_confirmed"
	EventAppointmentCanceled  EventType = "appointment_canceled"
	EventReviewPosted         EventType = "review_posted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID int64       `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	CustomerID int64   `json:"customer_id"`
	TotalPrice float64 `json:"total_price"`
	ItemCount  int     `json:"item_count"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// AppointmentPayload payload for booking lifecycle events.
type AppointmentPayload struct {
	Email        string `json:"email"`
	GroomService string `json:"groom_service"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// ReviewPostedPayload payload.
type ReviewPostedPayload struct {
	ProductID  int64 `json:"product_id"`
	CustomerID int64 `json:"customer_id"`
	Ratings    int   `json:"ratings"`
}
