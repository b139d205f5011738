package catalog

import (
	"testing"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetAndGet(t *testing.T) {
	cache := NewCache()

	_, ok := cache.Retreat("r1")
	assert.False(t, ok)
	assert.True(t, cache.FetchedAt().IsZero())

	cache.Set([]*domain.Retreat{
		{ID: "r1", Title: "Inner Healing Retreat"},
		{ID: "r2", Title: "Youth Retreat"},
	})

	got, ok := cache.Retreat("r2")
	require.True(t, ok)
	assert.Equal(t, "Youth Retreat", got.Title)
	assert.False(t, cache.FetchedAt().IsZero())
}

func TestCache_SetReplacesSnapshot(t *testing.T) {
	cache := NewCache()
	cache.Set([]*domain.Retreat{{ID: "r1"}})

	cache.Set([]*domain.Retreat{{ID: "r2"}})

	_, ok := cache.Retreat("r1")
	assert.False(t, ok)
	_, ok = cache.Retreat("r2")
	assert.True(t, ok)
}
