package domain

import "time"

// Address is a customer's single delivery address.
type Address struct {
	ID         int64
	CustomerID int64
	Region     string
	Province   string
	City       string
	Barangay   string
	PostalCode string
	Street     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
