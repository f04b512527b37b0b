package services

import (
	"sync"

	"finboard/pkg/contracts/domain"
)

// DashboardCache holds assembled dashboard data per ticker key for the
// lifetime of the process. Entries are populated lazily and never evicted.
//
// The mutex only guards map access; it is never held across an upstream
// fetch. Two concurrent misses for one ticker therefore both fetch and the
// later write wins, which is acceptable for read-mostly reference data.
type DashboardCache struct {
	mu      sync.RWMutex
	entries map[string]domain.DashboardData
}

// NewDashboardCache creates an empty cache.
func NewDashboardCache() *DashboardCache {
	return &DashboardCache{entries: make(map[string]domain.DashboardData)}
}

// Get returns the cached data for a ticker key, if present.
func (c *DashboardCache) Get(key string) (domain.DashboardData, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[key]
	return data, ok
}

// Put stores data under a ticker key, replacing any previous entry.
func (c *DashboardCache) Put(key string, data domain.DashboardData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
}

// Len returns the number of cached tickers.
func (c *DashboardCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries. Production never calls this; it exists so tests
// can reset state.
func (c *DashboardCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]domain.DashboardData)
}
