package domain

import "time"

type RetreatStatus string

const (
	RetreatStatusOpen     RetreatStatus = "registration_open"
	RetreatStatusWaitlist RetreatStatus = "waitlist"
	RetreatStatusClosed   RetreatStatus = "closed"
)

type RetreatCategory string

const (
	RetreatCategoryGeneral RetreatCategory = "general"
	RetreatCategoryYouth   RetreatCategory = "youth"
	RetreatCategoryCouples RetreatCategory = "couples"
	RetreatCategoryFamily  RetreatCategory = "family"
	RetreatCategoryHealing RetreatCategory = "healing"
)

// Availability is the number of seats offered per gender. It is a static
// offer set by the office, not a remaining count; occupancy is derived from
// active bookings at commit time.
type Availability struct {
	Total  int `json:"total"`
	Male   int `json:"male"`
	Female int `json:"female"`
}

func (a Availability) Seats(g Gender) int {
	if g == GenderFemale {
		return a.Female
	}
	return a.Male
}

type Retreat struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Category     RetreatCategory `json:"category"`
	Status       RetreatStatus   `json:"status"`
	Availability Availability    `json:"availability"`
	Price        *int64          `json:"price"` // minor units, nil when free
	IsPaid       bool            `json:"is_paid"`
	Location     string          `json:"location"`
	StartsOn     time.Time       `json:"starts_on"`
	EndsOn       time.Time       `json:"ends_on"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
