package cache

import (
	"context"
	"sync"
	"time"

	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/models"
)

// DefaultTTL bounds how stale a served snapshot may be.
const DefaultTTL = 5 * time.Minute

// FetchFunc builds a fresh wedding data snapshot from the remote sheets.
type FetchFunc func(ctx context.Context) (*models.WeddingData, error)

// SnapshotCache holds the most recently built wedding data snapshot and
// rebuilds it once its age exceeds the TTL. The mutex is held across the
// rebuild so simultaneous cache-miss requests share a single fetch instead
// of each issuing its own remote calls.
type SnapshotCache struct {
	mu        sync.Mutex
	fetch     FetchFunc
	now       func() time.Time
	ttl       time.Duration
	snapshot  *models.WeddingData
	fetchedAt time.Time
}

// New creates a snapshot cache around the given fetch function.
func New(fetch FetchFunc) *SnapshotCache {
	return &SnapshotCache{
		fetch: fetch,
		now:   time.Now,
		ttl:   DefaultTTL,
	}
}

// NewWithClock creates a cache with an injected clock and TTL, allowing
// expiry to be tested without real time passing.
func NewWithClock(fetch FetchFunc, now func() time.Time, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{fetch: fetch, now: now, ttl: ttl}
}

// Snapshot returns the cached wedding data, rebuilding it first when the
// cached copy is older than the TTL. A failed rebuild leaves any previous
// snapshot in place but still fails the calling request.
func (c *SnapshotCache) Snapshot(ctx context.Context) (*models.WeddingData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.snapshot, nil
	}

	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.snapshot = data
	c.fetchedAt = c.now()
	return c.snapshot, nil
}
