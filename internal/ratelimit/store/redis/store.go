// Package redis implements the rate-limit window table on Redis so multiple
// instances share one admission decision per client.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"payguard/internal/ratelimit"
)

const keyPrefix = "rl:window:"

// Store is a Redis-backed fixed-window counter. INCR is atomic on the server,
// which gives the same one-slot-left guarantee as the in-memory lock.
type Store struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// New creates a redis window store with the given ceiling and window duration.
func New(client *redis.Client, limit int, window time.Duration) *Store {
	return &Store{client: client, limit: limit, window: window}
}

// Check increments the client's window counter and decides admission. The
// counter key expires with the window, which is what resets the count.
func (s *Store) Check(ctx context.Context, clientKey string) (*ratelimit.Decision, error) {
	key := keyPrefix + clientKey

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("increment window counter: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			return nil, fmt.Errorf("set window expiry: %w", err)
		}
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("read window expiry: %w", err)
	}
	if ttl < 0 {
		// Counter survived without an expiry (crash between INCR and
		// EXPIRE). Re-arm it rather than letting the key count forever.
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			return nil, fmt.Errorf("re-arm window expiry: %w", err)
		}
		ttl = s.window
	}

	resetAt := time.Now().Add(ttl)
	if int(count) > s.limit {
		retryAfter := int(ttl.Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		return &ratelimit.Decision{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}, nil
	}

	return &ratelimit.Decision{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count),
		ResetAt:   resetAt,
	}, nil
}
