// Package ratelimit defines the admission-control model for the protected
// auth/payment surface: a per-client fixed window with a request ceiling.
package ratelimit

import (
	"context"
	"time"
)

// DefaultWindow and DefaultLimit mirror the deployed middleware settings:
// at most 100 requests per client per 15 minutes.
const (
	DefaultWindow = 15 * time.Minute
	DefaultLimit  = 100
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds, only set when denied
}

// WindowStore owns the per-client window table. Implementations must make the
// increment-and-decide sequence atomic so concurrent requests for the same key
// cannot both take the last slot, and denials must stay O(1).
type WindowStore interface {
	Check(ctx context.Context, clientKey string) (*Decision, error)
}
