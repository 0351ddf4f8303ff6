package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/ports"
)

const (
	hostelListKey = "hostels:active"
	hostelListTTL = time.Minute
)

// HostelCache caches the public active-hostel listing, counts included, in a
// single Redis key. The TTL keeps the derived counts reasonably fresh even
// without an explicit invalidation.
type HostelCache struct {
	client *redis.Client
}

func NewHostelCache(client *redis.Client) *HostelCache {
	return &HostelCache{client: client}
}

// Get returns the cached listing, or (nil, nil) on a miss.
func (c *HostelCache) Get(ctx context.Context) ([]ports.HostelListEntry, error) {
	raw, err := c.client.Get(ctx, hostelListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("hostel cache get: %w", err)
	}

	var entries []ports.HostelListEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("hostel cache decode: %w", err)
	}
	return entries, nil
}

func (c *HostelCache) Set(ctx context.Context, entries []ports.HostelListEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("hostel cache encode: %w", err)
	}
	return c.client.Set(ctx, hostelListKey, raw, hostelListTTL).Err()
}

// Invalidate drops the cached listing after an admin hostel write.
func (c *HostelCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, hostelListKey).Err()
}
