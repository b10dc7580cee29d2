package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
)

const availabilityTTL = 5 * time.Minute

// AvailabilityCache keeps short-lived snapshots of an artist's weekly
// availability for the public booking page. Every failure path is a
// cache miss: the page must render from the database even when Redis
// is down.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(addr string) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(artistID uint) string {
	return fmt.Sprintf("availability:%d", artistID)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	artistID uint,
) ([]models.Availability, bool) {

	raw, err := c.rdb.Get(ctx, key(artistID)).Bytes()
	if err != nil {
		return nil, false
	}

	var records []models.Availability
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false
	}

	return records, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	artistID uint,
	records []models.Availability,
) {
	raw, err := json.Marshal(records)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(artistID), raw, availabilityTTL)
}

// Invalidate drops the cached snapshot for an artist. Called after
// availability mutations so the public page never serves a stale week
// for longer than one request.
func (c *AvailabilityCache) Invalidate(ctx context.Context, artistID uint) {
	c.rdb.Del(ctx, key(artistID))
}
