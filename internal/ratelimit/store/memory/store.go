// Package memory implements the rate-limit window table in process memory.
// Suitable for a single instance; use the redis store when running more than one.
package memory

import (
	"context"
	"sync"
	"time"

	"payguard/internal/ratelimit"
)

// window is one client's fixed window. lastSeen drives garbage collection of
// idle clients, independent of the window itself.
type window struct {
	start    time.Time
	count    int
	lastSeen time.Time
}

// Store is an in-memory fixed-window counter keyed by client identity.
type Store struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	window  time.Duration

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a memory store with the given ceiling and window duration.
func New(limit int, windowDur time.Duration, opts ...Option) *Store {
	s := &Store{
		windows: make(map[string]*window),
		limit:   limit,
		window:  windowDur,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check records one request for clientKey and decides whether to admit it.
// The whole increment-and-decide sequence runs under one lock so two
// concurrent requests can never both take the last remaining slot.
func (s *Store) Check(ctx context.Context, clientKey string) (*ratelimit.Decision, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.windows[clientKey]
	if w == nil || now.Sub(w.start) >= s.window {
		w = &window{start: now, count: 0}
		s.windows[clientKey] = w
	}
	w.count++
	w.lastSeen = now

	resetAt := w.start.Add(s.window)
	if w.count > s.limit {
		// Denials stay O(1): the counter keeps incrementing but nothing
		// else is computed or allocated.
		return &ratelimit.Decision{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfterSeconds(resetAt, now),
		}, nil
	}

	return &ratelimit.Decision{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - w.count,
		ResetAt:   resetAt,
	}, nil
}

// StartJanitor sweeps windows for clients idle longer than twice the window
// duration. It blocks until ctx is cancelled; run it in its own goroutine.
func (s *Store) StartJanitor(ctx context.Context) {
	ticker := time.NewTicker(s.window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(s.now())
		}
	}
}

func (s *Store) sweep(now time.Time) {
	cutoff := now.Add(-2 * s.window)
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, w := range s.windows {
		if w.lastSeen.Before(cutoff) {
			delete(s.windows, key)
		}
	}
}

func retryAfterSeconds(resetAt, now time.Time) int {
	secs := int(resetAt.Sub(now).Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}
