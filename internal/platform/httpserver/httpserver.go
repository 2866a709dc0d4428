// Package httpserver builds the HTTP server with sane defaults for this project.
package httpserver

import (
	"net/http"
	"time"
)

// New returns an http.Server with timeouts tightened for a small API surface.
// The credential check is the slowest handler step; WriteTimeout leaves room
// for bcrypt at cost 12 under load.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
