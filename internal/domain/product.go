package domain

import "time"

// Product is a catalog item. Quantity tracks remaining stock and QuantitySold
// the lifetime units sold; order placement adjusts both without locking.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Type         string
	Price        float64
	Quantity     int
	QuantitySold int
	Image        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
