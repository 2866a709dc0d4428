// Package httptransport assembles the request pipeline: rate limiting, then
// security headers on the eventual response, then field validation and the
// business action inside the handlers. Transport stays thin; domain logic
// lives in the feature packages.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"payguard/internal/auth"
	"payguard/internal/payment"
	rlmw "payguard/internal/ratelimit/middleware"
	"payguard/internal/secheaders"
	"payguard/pkg/platform/httputil"
)

// Deps carries everything the router composes. All fields are required except
// where noted.
type Deps struct {
	Logger         *slog.Logger
	AuthHandler    *auth.Handler
	PaymentHandler *payment.Handler
	RateLimit      *rlmw.Middleware
	CORSOrigin     string
}

// NewRouter wires the public endpoints. The rate limiter guards only the
// protected auth/payment surface; health and metrics stay outside it so
// operators are never locked out by an attack on the API.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(recoverer(d.Logger))
	r.Use(secheaders.Middleware)
	r.Use(secheaders.CORS(d.CORSOrigin))

	r.Route("/api", func(api chi.Router) {
		api.Use(d.RateLimit.Limit)
		d.AuthHandler.Register(api)
		d.PaymentHandler.Register(api)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// recoverer turns a handler panic into a generic 500. Detail goes to the log,
// never to the client.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("handler panic", "panic", rec, "path", r.URL.Path)
					httputil.WriteJSON(w, http.StatusInternalServerError, map[string]string{
						"error": "internal_error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
