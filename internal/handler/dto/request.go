package dto

import "github.com/emmaus-center/RetreatBooker/internal/domain"

type AttendeesRequest struct {
	Male   int `json:"male" binding:"min=0"`
	Female int `json:"female" binding:"min=0"`
}

type CreateBookingRequest struct {
	RetreatID string                  `json:"retreat_id" binding:"required,uuid"`
	Attendees AttendeesRequest        `json:"attendees"`
	Form      domain.RegistrationForm `json:"form" binding:"required"`
}

// LookupRequest carries either a booking id or a (full name, phone) pair.
type LookupRequest struct {
	BookingID string `json:"booking_id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
}

type UpdateBookingRequest struct {
	Status    string `json:"status" binding:"required,oneof=cancelled rescheduled"`
	RetreatID string `json:"retreat_id"` // target, required for reschedule
	Version   int64  `json:"version" binding:"required,gt=0"`
}

type AddAttendeeRequest struct {
	Gender string `json:"gender" binding:"required,oneof=male female"`
}

type CheckoutRequest struct {
	Form domain.RegistrationForm `json:"form" binding:"required"`
}
