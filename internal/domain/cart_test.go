package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRetreat(id string, male, female int) *Retreat {
	return &Retreat{
		ID:     id,
		Title:  "Inner Healing Retreat",
		Status: RetreatStatusOpen,
		Availability: Availability{
			Total:  male + female,
			Male:   male,
			Female: female,
		},
	}
}

func TestCart_Add_GenderCapacity(t *testing.T) {
	cart := Cart{}
	retreat := openRetreat("r1", 1, 0)

	err := cart.Add(retreat, GenderFemale)
	assert.ErrorIs(t, err, ErrGenderCapacityExhausted)
	assert.Empty(t, cart)

	err = cart.Add(retreat, GenderMale)
	require.NoError(t, err)
	assert.Equal(t, CartEntry{Male: 1}, cart["r1"])

	err = cart.Add(retreat, GenderMale)
	assert.ErrorIs(t, err, ErrGenderCapacityExhausted)
	assert.Equal(t, CartEntry{Male: 1}, cart["r1"])
}

func TestCart_Add_ClosedRetreat(t *testing.T) {
	cart := Cart{}
	retreat := openRetreat("r1", 5, 5)
	retreat.Status = RetreatStatusClosed

	err := cart.Add(retreat, GenderMale)

	assert.ErrorIs(t, err, ErrClosedForRegistration)
	assert.Empty(t, cart)
}

func TestCart_Add_WaitlistAllowed(t *testing.T) {
	cart := Cart{}
	retreat := openRetreat("r1", 5, 5)
	retreat.Status = RetreatStatusWaitlist

	err := cart.Add(retreat, GenderFemale)

	require.NoError(t, err)
	assert.Equal(t, CartEntry{Female: 1}, cart["r1"])
}

func TestCart_Add_PerRetreatCap(t *testing.T) {
	cart := Cart{}
	retreat := openRetreat("r1", 20, 20)

	for i := 0; i < MaxAttendeesPerRetreat/2; i++ {
		require.NoError(t, cart.Add(retreat, GenderMale))
		require.NoError(t, cart.Add(retreat, GenderFemale))
	}

	err := cart.Add(retreat, GenderMale)
	assert.ErrorIs(t, err, ErrPerRetreatCapReached)
	assert.Equal(t, MaxAttendeesPerRetreat, cart["r1"].Total())
}

func TestCart_Add_NeverExceedsAvailability(t *testing.T) {
	cart := Cart{}
	retreat := openRetreat("r1", 3, 2)

	for i := 0; i < 10; i++ {
		_ = cart.Add(retreat, GenderMale)
		_ = cart.Add(retreat, GenderFemale)
	}

	entry := cart["r1"]
	assert.Equal(t, 3, entry.Male)
	assert.Equal(t, 2, entry.Female)
}

func TestCart_Remove_FloorsAtZero(t *testing.T) {
	cart := Cart{}
	retreat := openRetreat("r1", 2, 2)
	require.NoError(t, cart.Add(retreat, GenderMale))
	require.NoError(t, cart.Add(retreat, GenderFemale))

	cart.Remove("r1", GenderMale)
	cart.Remove("r1", GenderMale)
	cart.Remove("r1", GenderMale)

	assert.Equal(t, CartEntry{Female: 1}, cart["r1"])
}

func TestCart_Remove_DropsEmptyEntry(t *testing.T) {
	cart := Cart{}
	retreat := openRetreat("r1", 2, 2)
	require.NoError(t, cart.Add(retreat, GenderMale))

	cart.Remove("r1", GenderMale)

	_, ok := cart["r1"]
	assert.False(t, ok)
}

func TestCart_Remove_UnknownRetreatNoop(t *testing.T) {
	cart := Cart{"r1": {Male: 1}}

	cart.Remove("r2", GenderMale)

	assert.Equal(t, Cart{"r1": {Male: 1}}, cart)
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("male")
	require.NoError(t, err)
	assert.Equal(t, GenderMale, g)

	g, err = ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, g)

	_, err = ParseGender("other")
	assert.ErrorIs(t, err, ErrValidation)
}
