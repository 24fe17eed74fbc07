package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multipay-aggregator/config"
	"multipay-aggregator/internal/adapter/gateway/provider"
	httpHandler "multipay-aggregator/internal/adapter/http/handler"
	pgStorage "multipay-aggregator/internal/adapter/storage/postgres"
	redisStorage "multipay-aggregator/internal/adapter/storage/redis"
	"multipay-aggregator/internal/core/ports"
	"multipay-aggregator/internal/service"
	"multipay-aggregator/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Multipay Aggregator")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	bookingRepo := pgStorage.NewBookingRepo(pool)
	ppobRepo := pgStorage.NewPpobRepo(pool)
	topupRepo := pgStorage.NewTopupRepo(pool)
	transferRepo := pgStorage.NewTransferRepo(pool)
	webhookRepo := pgStorage.NewWebhookEventRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	reportingRepo := pgStorage.NewReportingRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	replayCache := redisStorage.NewReplayCache(rdb)
	catalogCache := redisStorage.NewCatalogCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	fpSvc := service.NewFingerprintService()

	// Settlement provider client
	gateway := provider.NewClient(cfg.Gateway, log)

	// Execution coordinator: the at-most-once core every settlement
	// operation runs through.
	coordinator := service.NewCoordinator(ledgerRepo, replayCache, fpSvc, cfg.Idempotency.TTL, log)

	// Business services
	authSvc := service.NewAuthService(userRepo, hashSvc, tokenSvc, log)
	bookingSvc := service.NewBookingService(coordinator, gateway, bookingRepo, transactor, log)
	ppobSvc := service.NewPpobService(coordinator, gateway, ppobRepo, catalogCache, cfg.Catalog.TTL, log)
	topupSvc := service.NewTopupService(coordinator, gateway, topupRepo, catalogCache, cfg.Catalog.TTL, log)
	transferSvc := service.NewTransferService(coordinator, gateway, transferRepo, catalogCache, cfg.Catalog.TTL, log)
	reconciler := service.NewReconcilerService(webhookRepo, bookingRepo, ppobRepo, topupRepo, transferRepo, transactor, cfg.Webhook.MaxAttempts, log)
	reportingSvc := service.NewReportingService(reportingRepo, webhookRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Background maintenance loops
	go purgeLedgerLoop(ctx, ledgerRepo, cfg.Idempotency.PurgeInterval, log)
	go sweepWebhooksLoop(ctx, reconciler, cfg.Webhook.SweepInterval, log)
	go expireHoldsLoop(ctx, bookingRepo, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		BookingSvc:     bookingSvc,
		PpobSvc:        ppobSvc,
		TopupSvc:       topupSvc,
		TransferSvc:    transferSvc,
		Reconciler:     reconciler,
		ReportingSvc:   reportingSvc,
		SigSvc:         sigSvc,
		WebhookSecret:  cfg.Webhook.Secret,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// purgeLedgerLoop removes expired idempotency records so the table does not
// grow without bound.
func purgeLedgerLoop(ctx context.Context, ledger ports.IdempotencyLedger, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := ledger.PurgeExpired(ctx, time.Now())
			if err != nil {
				log.Error().Err(err).Msg("ledger purge failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("purged", n).Msg("expired ledger records removed")
			}
		}
	}
}

// sweepWebhooksLoop retries unprocessed webhook events on a fixed cadence.
func sweepWebhooksLoop(ctx context.Context, reconciler ports.Reconciler, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := reconciler.Sweep(ctx, time.Now()); err != nil {
				log.Error().Err(err).Msg("webhook sweep failed")
			}
		}
	}
}

// expireHoldsLoop fails pending bookings whose payment window has lapsed.
func expireHoldsLoop(ctx context.Context, bookings ports.BookingRepository, log zerolog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := bookings.ExpireHolds(ctx, time.Now())
			if err != nil {
				log.Error().Err(err).Msg("booking hold expiry failed")
				continue
			}
			if n > 0 {
				log.Info().Int64("expired", n).Msg("pending bookings expired")
			}
		}
	}
}
