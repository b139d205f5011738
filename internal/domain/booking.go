package domain

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
	"unicode"
)

type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "pending"
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusCancelled   BookingStatus = "cancelled"
	BookingStatusRescheduled BookingStatus = "rescheduled"
)

// ActiveStatuses hold seats against a retreat's availability.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusRescheduled,
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusWaived   PaymentStatus = "waived"
)

type Booking struct {
	ID                        string           `json:"id"`
	RetreatID                 string           `json:"retreat_id"`
	RetreatTitle              string           `json:"retreat_title"`
	FullName                  string           `json:"full_name"`
	Phone                     string           `json:"phone"` // canonical: whitespace stripped
	Email                     string           `json:"email"`
	MaleSeats                 int              `json:"male_seats"`
	FemaleSeats               int              `json:"female_seats"`
	Status                    BookingStatus    `json:"status"`
	PaymentStatus             PaymentStatus    `json:"payment_status"`
	RescheduledToRetreatTitle string           `json:"rescheduled_to_retreat_title,omitempty"`
	RescheduledAt             *time.Time       `json:"rescheduled_at,omitempty"`
	Version                   int64            `json:"version"`
	Form                      RegistrationForm `json:"form"`
	CreatedAt                 time.Time        `json:"created_at"`
	UpdatedAt                 time.Time        `json:"updated_at"`
}

const bookingIDPrefix = "RBK-"

// NewBookingID returns an id of the form RBK-<hex>.
func NewBookingID() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return bookingIDPrefix + hex.EncodeToString(buf)
}

// NormalizePhone strips all whitespace; the result is the canonical lookup key.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}
