package domain

import "fmt"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), nil
	}
	return "", fmt.Errorf("%w: gender must be male or female", ErrValidation)
}

// MaxAttendeesPerRetreat caps the attendees one cart may stage for a single
// retreat.
const MaxAttendeesPerRetreat = 10

type CartEntry struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

func (e CartEntry) Total() int { return e.Male + e.Female }

func (e CartEntry) Count(g Gender) int {
	if g == GenderFemale {
		return e.Female
	}
	return e.Male
}

// Cart is the ephemeral, session-local staging area: retreat id -> attendee
// counts. Mutations go through the capacity rules below; the checks are
// advisory, read against the last catalog snapshot. The authoritative
// check-and-reserve happens at booking creation.
type Cart map[string]CartEntry

// CanAdd reports whether one more attendee of gender g fits into the cart
// entry for retreat r. The returned error names the reject reason.
func (c Cart) CanAdd(r *Retreat, g Gender) error {
	entry := c[r.ID]
	if r.Status == RetreatStatusClosed {
		return ErrClosedForRegistration
	}
	if entry.Total() >= MaxAttendeesPerRetreat {
		return ErrPerRetreatCapReached
	}
	if entry.Count(g) >= r.Availability.Seats(g) {
		return ErrGenderCapacityExhausted
	}
	return nil
}

// Add applies CanAdd and, on success, increments the count by one.
func (c Cart) Add(r *Retreat, g Gender) error {
	if err := c.CanAdd(r, g); err != nil {
		return err
	}
	entry := c[r.ID]
	if g == GenderFemale {
		entry.Female++
	} else {
		entry.Male++
	}
	c[r.ID] = entry
	return nil
}

// Remove decrements the count by one, floor zero. The entry is dropped once
// both counts reach zero.
func (c Cart) Remove(retreatID string, g Gender) {
	entry, ok := c[retreatID]
	if !ok {
		return
	}
	if g == GenderFemale {
		if entry.Female > 0 {
			entry.Female--
		}
	} else {
		if entry.Male > 0 {
			entry.Male--
		}
	}
	if entry.Total() == 0 {
		delete(c, retreatID)
		return
	}
	c[retreatID] = entry
}

type CartTotals struct {
	AttendeeCount int   `json:"attendee_count"`
	Subtotal      int64 `json:"subtotal"`
}
