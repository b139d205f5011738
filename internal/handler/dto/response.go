package dto

import (
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
)

// DataResponse is the envelope every successful response uses.
type DataResponse struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type RetreatResponse struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Category     string              `json:"category"`
	Status       string              `json:"status"`
	Availability domain.Availability `json:"availability"`
	Price        *int64              `json:"price"`
	IsPaid       bool                `json:"is_paid"`
	Location     string              `json:"location"`
	StartsOn     string              `json:"starts_on"`
	EndsOn       string              `json:"ends_on"`
}

type BookingResponse struct {
	ID                        string `json:"id"`
	RetreatID                 string `json:"retreat_id"`
	RetreatTitle              string `json:"retreat_title"`
	FullName                  string `json:"full_name"`
	Phone                     string `json:"phone"`
	Email                     string `json:"email"`
	MaleSeats                 int    `json:"male_seats"`
	FemaleSeats               int    `json:"female_seats"`
	Status                    string `json:"status"`
	PaymentStatus             string `json:"payment_status"`
	RescheduledToRetreatTitle string `json:"rescheduled_to_retreat_title,omitempty"`
	RescheduledAt             string `json:"rescheduled_at,omitempty"`
	Version                   int64  `json:"version"`
	CreatedAt                 string `json:"created_at"`
}

type CartResponse struct {
	Entries map[string]domain.CartEntry `json:"entries"`
	Totals  domain.CartTotals           `json:"totals"`
}

func ToRetreatResponse(r *domain.Retreat) RetreatResponse {
	return RetreatResponse{
		ID:           r.ID,
		Title:        r.Title,
		Slug:         r.Slug,
		Category:     string(r.Category),
		Status:       string(r.Status),
		Availability: r.Availability,
		Price:        r.Price,
		IsPaid:       r.IsPaid,
		Location:     r.Location,
		StartsOn:     r.StartsOn.Format(time.DateOnly),
		EndsOn:       r.EndsOn.Format(time.DateOnly),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                        b.ID,
		RetreatID:                 b.RetreatID,
		RetreatTitle:              b.RetreatTitle,
		FullName:                  b.FullName,
		Phone:                     b.Phone,
		Email:                     b.Email,
		MaleSeats:                 b.MaleSeats,
		FemaleSeats:               b.FemaleSeats,
		Status:                    string(b.Status),
		PaymentStatus:             string(b.PaymentStatus),
		RescheduledToRetreatTitle: b.RescheduledToRetreatTitle,
		Version:                   b.Version,
		CreatedAt:                 b.CreatedAt.Format(time.RFC3339),
	}
	if b.RescheduledAt != nil {
		resp.RescheduledAt = b.RescheduledAt.Format(time.RFC3339)
	}
	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, ToBookingResponse(b))
	}
	return res
}

func ToCartResponse(cart domain.Cart, totals domain.CartTotals) CartResponse {
	entries := make(map[string]domain.CartEntry, len(cart))
	for id, entry := range cart {
		entries[id] = entry
	}
	return CartResponse{Entries: entries, Totals: totals}
}
