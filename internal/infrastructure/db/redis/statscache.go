package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cargotrack/cargo-api/internal/core/ports"
)

const (
	statsKey = "analytics:products:snapshot"
	statsTTL = 60 * time.Second
)

// StatsCache stores the analytics snapshot as a JSON value under a single
// short-TTL key, so repeated dashboard refreshes within a minute share one
// collection scan.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached snapshot, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.ProductStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.ProductStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, nil
	}
	return &stats, nil
}

// Set stores the snapshot, expiring after statsTTL.
func (c *StatsCache) Set(ctx context.Context, stats *ports.ProductStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, statsKey, raw, statsTTL).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}
