package cache

import (
	"context"
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const courseVersionKey = "courses:list:ver"

// CourseCache stores rendered course-listing responses in Redis. Entries
// carry a version segment in their key; mutations bump the version so stale
// listings fall out immediately instead of waiting for the TTL.
type CourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCourseCache builds a cache handle. A nil client or non-positive TTL
// disables caching entirely.
func NewCourseCache(client *redis.Client, ttl time.Duration) *CourseCache {
	return &CourseCache{client: client, ttl: ttl}
}

// Enabled reports whether lookups should be attempted.
func (c *CourseCache) Enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// Get returns the cached response body for a query string, if present.
func (c *CourseCache) Get(ctx context.Context, query string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	key, err := c.key(ctx, query)
	if err != nil {
		return nil, false
	}
	body, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

// Set stores a rendered response body for a query string. Failures are
// swallowed: the cache never breaks a request.
func (c *CourseCache) Set(ctx context.Context, query string, body []byte) {
	if !c.Enabled() {
		return
	}
	key, err := c.key(ctx, query)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, body, c.ttl).Err()
}

// Invalidate bumps the version so every cached listing is orphaned.
func (c *CourseCache) Invalidate(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	_ = c.client.Incr(ctx, courseVersionKey).Err()
}

func (c *CourseCache) key(ctx context.Context, query string) (string, error) {
	ver, err := c.client.Get(ctx, courseVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	sum := sha1.Sum([]byte(query))
	return fmt.Sprintf("courses:list:%d:%x", ver, sum), nil
}
