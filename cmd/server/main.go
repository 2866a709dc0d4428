package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"payguard/internal/auth"
	authmetrics "payguard/internal/auth/metrics"
	"payguard/internal/credential"
	"payguard/internal/payment"
	"payguard/internal/platform/config"
	"payguard/internal/platform/httpserver"
	"payguard/internal/platform/logger"
	"payguard/internal/platform/postgres"
	platformredis "payguard/internal/platform/redis"
	"payguard/internal/ratelimit"
	rlmetrics "payguard/internal/ratelimit/metrics"
	rlmw "payguard/internal/ratelimit/middleware"
	memorystore "payguard/internal/ratelimit/store/memory"
	redisstore "payguard/internal/ratelimit/store/redis"
	httptransport "payguard/internal/transport/http"
)

// main wires dependencies and owns the server lifecycle. Business logic lives
// in the feature packages.
func main() {
	// Optional .env for local development; env vars win.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	verifier := credential.New(cfg.BcryptCost)

	// Stores: Postgres and Redis when configured, in-memory otherwise.
	var credStore auth.CredentialStore
	var txStore payment.TransactionStore

	pool, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres unavailable", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
		credStore = auth.NewPostgresStore(pool)
		txStore = payment.NewPostgresStore(pool)
		log.Info("using postgres-backed stores")
	} else {
		credStore = auth.SeededStore()
		txStore = payment.NewMemoryStore()
		log.Info("using in-memory stores with seeded demo accounts")
	}

	var windows ratelimit.WindowStore
	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		windows = redisstore.New(redisClient.Client, cfg.RateLimitMax, cfg.RateLimitWindow)
		log.Info("using redis-backed rate limit windows")
	} else {
		memStore := memorystore.New(cfg.RateLimitMax, cfg.RateLimitWindow)
		go memStore.StartJanitor(ctx)
		windows = memStore
	}

	authService := auth.NewService(credStore, verifier, log, auth.WithMetrics(authmetrics.New()))
	paymentService := payment.NewService(txStore, log)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		AuthHandler:    auth.NewHandler(authService, log),
		PaymentHandler: payment.NewHandler(paymentService, log),
		RateLimit:      rlmw.New(windows, log, rlmw.WithMetrics(rlmetrics.New())),
		CORSOrigin:     cfg.CORSOrigin,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting payguard",
		"addr", cfg.Addr,
		"rate_limit_max", cfg.RateLimitMax,
		"rate_limit_window", cfg.RateLimitWindow.String(),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
