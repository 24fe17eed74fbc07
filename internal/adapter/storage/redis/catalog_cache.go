package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CatalogCache implements ports.CatalogCache using Redis. Keys carry their
// own namespace (catalog:ppob:products, catalog:banks, ...) chosen by the
// owning service, so no prefix is added here.
type CatalogCache struct {
	client *goredis.Client
}

// NewCatalogCache creates a new Redis-backed catalog cache.
func NewCatalogCache(client *goredis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get retrieves a catalog snapshot. Returns nil, nil if absent.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis catalog get: %w", err)
	}
	return val, nil
}

// Set stores a catalog snapshot with TTL.
func (c *CatalogCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis catalog set: %w", err)
	}
	return nil
}

// Invalidate drops a catalog snapshot.
func (c *CatalogCache) Invalidate(ctx context.Context, key string) error {
	err := c.client.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("redis catalog del: %w", err)
	}
	return nil
}
