package domain

import "time"

// Cart shares its primary key with the owning customer; one cart per account,
// provisioned empty at signup.
type Cart struct {
	ID        int64
	Items     []CartItem
	CreatedAt time.Time
}

// CartItem links a product into a cart.
type CartItem struct {
	ID          int64
	CartID      int64
	ProductID   int64
	Quantity    int
	LastUpdated time.Time
}
