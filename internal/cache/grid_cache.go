package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mobelio/estimator_api/internal/models"
)

// GridCache caches the enumerated combination grid in Redis, keyed by the
// catalog store revision. A mutation bumps the revision, so stale grids are
// simply never read again and expire via TTL.
type GridCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewGridCache creates a GridCache with the given entry TTL.
func NewGridCache(redis *RedisClient, ttl time.Duration) *GridCache {
	return &GridCache{redis: redis, ttl: ttl}
}

// key returns the Redis key for a catalog revision.
func (c *GridCache) key(revision uint64) string {
	return fmt.Sprintf("grid:rev:%d", revision)
}

// Set stores the grid for a catalog revision.
func (c *GridCache) Set(ctx context.Context, revision uint64, grid []models.Combination) error {
	payload, err := json.Marshal(grid)
	if err != nil {
		return fmt.Errorf("failed to marshal combination grid: %w", err)
	}
	if err := c.redis.Set(ctx, c.key(revision), string(payload), c.ttl); err != nil {
		return fmt.Errorf("failed to set grid key: %w", err)
	}
	return nil
}

// Get retrieves the grid for a catalog revision. A miss returns an error from
// the underlying client.
func (c *GridCache) Get(ctx context.Context, revision uint64) ([]models.Combination, error) {
	payload, err := c.redis.Get(ctx, c.key(revision))
	if err != nil {
		return nil, err
	}
	var grid []models.Combination
	if err := json.Unmarshal([]byte(payload), &grid); err != nil {
		return nil, fmt.Errorf("failed to unmarshal combination grid: %w", err)
	}
	return grid, nil
}
