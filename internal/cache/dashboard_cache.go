package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyDashboard = "dashboard:"

// DashboardCache keeps assembled dashboard aggregates in Redis for a short
// TTL. A miss is (nil, nil); note writes invalidate the founder's entry.
type DashboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDashboardCache(rdb *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{rdb: rdb, ttl: ttl}
}

func (c *DashboardCache) Get(ctx context.Context, founderID string) (*dom.Dashboard, error) {
	b, err := c.rdb.Get(ctx, keyDashboard+founderID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d dom.Dashboard
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *DashboardCache) Set(ctx context.Context, founderID string, d *dom.Dashboard) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyDashboard+founderID, b, c.ttl).Err()
}

func (c *DashboardCache) Invalidate(ctx context.Context, founderID string) error {
	return c.rdb.Del(ctx, keyDashboard+founderID).Err()
}
