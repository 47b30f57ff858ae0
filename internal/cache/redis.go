// Package cache manages the Redis connection used for request counters.
//
// Entity state is never cached here: every request reads current state from
// Postgres, so the only Redis consumers are the rate-limit counters and the
// readiness probe.
package cache

import (
	"context"
	"strings"
	"time"

	"repairhub/internal/middleware"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis initializes the Redis client with the given address. The address
// may be a bare host:port or a redis:// URL. An empty or invalid address
// leaves the client nil; callers treat that as "no rate limiting".
func InitRedis(addr string) {
	if addr == "" {
		client = nil
		return
	}

	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			middleware.Logger.Warn("invalid REDIS_URL, continuing without Redis", "addr", addr, "error", err)
			client = nil
			return
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unreachable, continuing without Redis", "addr", addr, "error", err)
	}
}

// GetClient returns the shared Redis client, or nil when Redis is not
// configured.
func GetClient() *redis.Client {
	return client
}
