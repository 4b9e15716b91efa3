package dto

import "time"

// SignupRequest payload for new customers.
type SignupRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// LoginRequest payload shared by the customer and admin login endpoints.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminCreateRequest payload for registering an admin.
type AdminCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminUpdateRequest payload for renaming an admin or rotating its password;
// empty fields keep the stored value.
type AdminUpdateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminResponse is the safe view of an admin account.
type AdminResponse struct {
	ID       int64  `json:"adminId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
