package catalog

import (
	"sync"
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
)

// Cache holds the last-fetched catalog snapshot. Cart capacity checks read
// from it, so they are only as fresh as the last refresh; the authoritative
// check happens at booking creation against the store.
type Cache struct {
	mu        sync.RWMutex
	byID      map[string]*domain.Retreat
	fetchedAt time.Time
}

func NewCache() *Cache {
	return &Cache{byID: make(map[string]*domain.Retreat)}
}

func (c *Cache) Set(retreats []*domain.Retreat) {
	byID := make(map[string]*domain.Retreat, len(retreats))
	for _, r := range retreats {
		byID[r.ID] = r
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID = byID
	c.fetchedAt = time.Now().UTC()
}

func (c *Cache) Retreat(id string) (*domain.Retreat, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.byID[id]
	return r, ok
}

func (c *Cache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}
