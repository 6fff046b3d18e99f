package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	publicPageKeyPrefix = "public_page:"
	opTimeout           = 500 * time.Millisecond
)

// PublicPageCache is a redis-backed cache for rendered public page
// payloads, keyed by username. Failures degrade to cache misses; the page
// is always rebuildable from the database.
type PublicPageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPublicPageCache creates a cache around an existing redis client
func NewPublicPageCache(client *redis.Client, ttl time.Duration) *PublicPageCache {
	return &PublicPageCache{client: client, ttl: ttl}
}

// Get returns the cached payload for a username, if present
func (c *PublicPageCache) Get(username string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	payload, err := c.client.Get(ctx, publicPageKeyPrefix+username).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("public page cache read failed")
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload for a username with the configured TTL
func (c *PublicPageCache) Set(username string, payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, publicPageKeyPrefix+username, payload, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("public page cache write failed")
	}
}

// Invalidate drops the cached payload for a username
func (c *PublicPageCache) Invalidate(username string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.client.Del(ctx, publicPageKeyPrefix+username).Err(); err != nil {
		logrus.WithError(err).Warn("public page cache invalidation failed")
	}
}
