// internal/profile/cache.go
// Redis read-through cache for resolved preference profiles. The
// database row stays authoritative; a nil client disables caching.

package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("preferences:%d", userID)
}

// Get returns the cached profile and whether it was present.
func (c *Cache) Get(ctx context.Context, userID int64) (Preferences, bool) {
	if c == nil || c.client == nil {
		return Preferences{}, false
	}

	raw, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if err != nil {
		return Preferences{}, false
	}

	var prefs Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return Preferences{}, false
	}
	return prefs, true
}

func (c *Cache) Set(ctx context.Context, userID int64, prefs Preferences) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(userID), raw, c.ttl)
}

func (c *Cache) Invalidate(ctx context.Context, userID int64) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, cacheKey(userID))
}
