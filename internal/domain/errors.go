package domain

import "errors"

var (
	ErrRetreatNotFound = errors.New("retreat not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// Cart capacity reject reasons, surfaced to the guest as transient notices.
var (
	ErrClosedForRegistration   = errors.New("retreat is closed for registration")
	ErrGenderCapacityExhausted = errors.New("no seats left for this gender")
	ErrPerRetreatCapReached    = errors.New("attendee limit for this retreat reached")
)

// Booking lifecycle conflicts.
var (
	ErrNoAvailableSeats     = errors.New("not enough seats left")
	ErrBookingCancelled     = errors.New("booking is cancelled")
	ErrSameRetreat          = errors.New("booking already belongs to this retreat")
	ErrRetreatClosed        = errors.New("target retreat is closed")
	ErrTargetRetreatMissing = errors.New("target retreat no longer exists")
	ErrStaleVersion         = errors.New("booking was modified by another request")
)

var (
	ErrValidation = errors.New("validation error")
	ErrEmptyCart  = errors.New("cart is empty")
)
