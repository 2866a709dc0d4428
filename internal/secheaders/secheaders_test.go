package secheaders

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareSetsPolicyHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Middleware(okHandler()).ServeHTTP(rec, req)

	want := map[string]string{
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains; preload",
		"X-Frame-Options":           "SAMEORIGIN",
		"X-Content-Type-Options":    "nosniff",
		"Content-Security-Policy":   "default-src 'self'",
		"X-DNS-Prefetch-Control":    "off",
		"Referrer-Policy":           "no-referrer",
	}
	for header, value := range want {
		assert.Equal(t, value, rec.Header().Get(header), header)
	}
	assert.Empty(t, rec.Header().Get("Server"))
	assert.Empty(t, rec.Header().Get("X-Powered-By"))
}

func TestMiddlewareHeadersPresentOnErrorResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	Middleware(failing).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestCORS(t *testing.T) {
	const origin = "https://localhost:5173"
	handler := CORS(origin)(okHandler())

	t.Run("allowed origin echoed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments", nil)
		req.Header.Set("Origin", origin)

		handler.ServeHTTP(rec, req)

		assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin gets no CORS headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payments", nil)
		req.Header.Set("Origin", "https://evil.example")

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/payments", nil)
		req.Header.Set("Origin", origin)

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	})
}
