package dto

import "github.com/pawtopia/petshop-api/internal/domain"

// AppointmentRequest payload for booking.
type AppointmentRequest struct {
	Email        string `json:"email"`
	ContactNo    string `json:"contactNo"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	GroomService string `json:"groomService"`
	Price        int    `json:"price"`
}

// AppointmentResponse is the booking view.
type AppointmentResponse struct {
	ID           int64  `json:"appId"`
	Email        string `json:"email"`
	ContactNo    string `json:"contactNo"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	GroomService string `json:"groomService"`
	Price        int    `json:"price"`
	Confirmed    bool   `json:"confirmed"`
	Canceled     bool   `json:"canceled"`
}

// NewAppointmentResponse maps an appointment to its response view.
func NewAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:           a.ID,
		Email:        a.Email,
		ContactNo:    a.ContactNo,
		Date:         a.Date,
		Time:         a.Time,
		GroomService: a.GroomService,
		Price:        a.Price,
		Confirmed:    a.Confirmed,
		Canceled:     a.Canceled,
	}
}
