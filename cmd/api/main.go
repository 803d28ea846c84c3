// Package main is the entry point for the travel agency API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/auth"
	"github.com/pkordes/travel-agency/backend/internal/config"
	"github.com/pkordes/travel-agency/backend/internal/handler"
	"github.com/pkordes/travel-agency/backend/internal/job"
	"github.com/pkordes/travel-agency/backend/internal/media"
	"github.com/pkordes/travel-agency/backend/internal/middleware"
	"github.com/pkordes/travel-agency/backend/internal/notify"
	"github.com/pkordes/travel-agency/backend/internal/observability"
	"github.com/pkordes/travel-agency/backend/internal/repo"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

const serviceName = "travel-agency-api"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Logger -----------------------------------------------------------
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// --- Tracing ----------------------------------------------------------
	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:  serviceName,
		Environment:  cfg.Env,
		Exporter:     cfg.OTelExporter,
		OTLPEndpoint: cfg.OTelEndpoint,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	// --- Metrics ----------------------------------------------------------
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	// --- Rate limiting ----------------------------------------------------
	var limiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			// The limiter fails open, so an unreachable Redis is not fatal.
			logger.Warn("redis unreachable at startup", zap.Error(err))
		}
		limiter = middleware.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, logger)
	} else {
		logger.Info("REDIS_URL not set, rate limiting disabled")
	}

	// --- Media ------------------------------------------------------------
	var remover media.Remover = media.NopRemover{Log: logger}
	if cfg.S3Bucket != "" {
		remover, err = media.NewS3Remover(ctx, media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return fmt.Errorf("build s3 client: %w", err)
		}
	} else {
		logger.Info("S3_BUCKET not set, media removal disabled")
	}
	orphans := repo.NewOrphanRepo(pool)
	cleaner := media.NewCleaner(remover, orphans, metrics, logger)

	// --- E-mail -----------------------------------------------------------
	mailer := notify.NewMailer(cfg.ResendAPIKey, cfg.MailFrom, cfg.OperatorEmail, logger)

	// --- Repositories and services ----------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	enquiryRepo := repo.NewEnquiryRepo(pool)
	userRepo := repo.NewUserRepo(pool)
	otpRepo := repo.NewOtpRepo(pool)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)

	srv := handler.NewServer(handler.Deps{
		Trips:            service.NewTripService(tripRepo, cleaner, logger),
		Blogs:            service.NewBlogService(repo.NewBlogRepo(pool), cleaner, logger, nil),
		Reviews:          service.NewReviewService(repo.NewReviewRepo(pool), logger),
		WrittenReviews:   service.NewWrittenReviewService(repo.NewWrittenReviewRepo(pool), cleaner, logger),
		Certificates:     service.NewCertificateService(repo.NewCertificateRepo(pool), cleaner, logger),
		Destinations:     service.NewDestinationService(repo.NewDestinationRepo(pool), cleaner, logger),
		Drivers:          service.NewDriverService(repo.NewDriverRepo(pool), cleaner, logger),
		Enquiries:        service.NewEnquiryService(enquiryRepo, mailer, metrics, logger),
		FAQs:             service.NewFAQService(repo.NewFAQRepo(pool), cleaner, logger),
		Banners:          service.NewBannerService(repo.NewBannerRepo(pool), cleaner, logger),
		BrandingPartners: service.NewBrandingPartnerService(repo.NewBrandingPartnerRepo(pool), cleaner, logger),
		HotelPartners:    service.NewHotelPartnerService(repo.NewHotelPartnerRepo(pool), cleaner, logger),
		Team:             service.NewTeamService(repo.NewTeamRepo(pool), cleaner, logger),
		Users:            service.NewUserService(userRepo, logger),
		Settings:         service.NewSettingsService(repo.NewSettingsRepo(pool), cleaner, logger),
		Auth:             service.NewAuthService(userRepo, otpRepo, tokens, mailer, logger),
		Export:           service.NewExportService(enquiryRepo, tripRepo),
		DB:               pool,
		Tokens:           tokens,
		Limiter:          limiter,
		Log:              logger,
		Production:       cfg.IsProduction(),
	})

	// --- Background jobs --------------------------------------------------
	scheduler := job.NewScheduler(logger)
	sweeper := job.NewOrphanSweeper(orphans, remover, metrics, logger)
	if err := scheduler.Add("media-orphan-sweep", cfg.OrphanSweepSchedule, sweeper.Run); err != nil {
		return err
	}
	purger := job.NewOTPPurger(otpRepo, metrics, logger)
	if err := scheduler.Add("otp-purge", cfg.OTPPurgeSchedule, purger.Run); err != nil {
		return err
	}
	scheduler.Start()

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
	// Recoverer → CORS → body limit.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewRequestLogger(logger))
	r.Use(middleware.NewMetricsHandler(metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv.Register(r)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", httpSrv.Addr), zap.String("env", cfg.Env))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
