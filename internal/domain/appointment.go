package domain

import "time"

// Appointment is a grooming booking. Confirmed and Canceled are independent
// flags flipped by the admin endpoints.
type Appointment struct {
	ID           int64
	Email        string
	ContactNo    string
	Date         string
	Time         string
	GroomService string
	Price        int
	Confirmed    bool
	Canceled     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
