// Package middleware applies the rate limiter to the protected HTTP surface.
package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"payguard/internal/ratelimit"
	"payguard/internal/ratelimit/metrics"
	"payguard/pkg/platform/httputil"
)

type Middleware struct {
	store   ratelimit.WindowStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Middleware)

// WithMetrics attaches prometheus counters. Optional so tests can run without
// touching the default registry.
func WithMetrics(m *metrics.Metrics) Option {
	return func(mw *Middleware) { mw.metrics = m }
}

func New(store ratelimit.WindowStore, logger *slog.Logger, opts ...Option) *Middleware {
	mw := &Middleware{store: store, logger: logger}
	for _, opt := range opts {
		opt(mw)
	}
	return mw
}

// Limit admits or denies the request before the handler runs. Mount it only on
// routes that need it; the limiter is not a global middleware. A store failure
// fails open: a broken limiter must not take the login surface down with it.
func (m *Middleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		decision, err := m.store.Check(r.Context(), key)
		if err != nil {
			m.logger.Error("rate limit check failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, decision)

		if !decision.Allowed {
			if m.metrics != nil {
				m.metrics.IncrementDenied()
			}
			m.logger.Warn("rate limit exceeded",
				"client", key,
				"path", r.URL.Path,
				"retry_after", decision.RetryAfter,
			)
			writeRateLimitExceeded(w, decision)
			return
		}

		if m.metrics != nil {
			m.metrics.IncrementAllowed()
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller by source address. RemoteAddr is already
// rewritten by the RealIP middleware when the server sits behind a proxy.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func addRateLimitHeaders(w http.ResponseWriter, d *ratelimit.Decision) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, d *ratelimit.Decision) {
	w.Header().Set("Retry-After", strconv.Itoa(d.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limited",
		"message":     "Too many requests from this client. Please try again later.",
		"retry_after": d.RetryAfter,
	})
}
