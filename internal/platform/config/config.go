// Package config builds runtime configuration from the environment so main
// stays lean. Every knob has a development default; production overrides via
// env vars or a .env file loaded by main.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything the server needs at startup.
type Config struct {
	Addr       string
	CORSOrigin string

	// Rate limiting for the protected auth/payment surface.
	RateLimitWindow time.Duration
	RateLimitMax    int

	// Optional backing services. Empty URL means the in-memory
	// implementation is used instead.
	RedisURL    string
	DatabaseURL string

	BcryptCost int
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Addr:            getString("PAYGUARD_ADDR", ":4000"),
		CORSOrigin:      getString("CORS_ORIGIN", "https://localhost:5173"),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMax:    getInt("RATE_LIMIT_MAX", 100),
		RedisURL:        os.Getenv("REDIS_URL"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		BcryptCost:      getInt("BCRYPT_COST", 12),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
