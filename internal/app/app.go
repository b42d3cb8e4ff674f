// Package app wires together the storefront's dependencies and runs the
// HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/config"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/event"
	handlerhttp "github.com/PrajwalKamdi/Women-Empower-sub000/internal/handler/http"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/images"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/store"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/health"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httpclient"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/kafka"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/tracing"
)

// App holds the storefront's long-lived resources.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	httpServer     *http.Server
	redisClient    *redis.Client
	producer       *kafka.Producer
	tracerShutdown func(context.Context) error
}

// NewApp creates the application with all dependencies wired.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.Tracing.OTLPEndpoint,
		SampleRate:     cfg.Tracing.SampleRate,
		Enabled:        cfg.Tracing.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Backend transport: retrying client, optionally behind a breaker.
	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = cfg.Backend.Timeout
	clientCfg.MaxRetries = cfg.Backend.MaxRetries
	baseClient := httpclient.New(clientCfg)

	var doer backend.HTTPDoer = baseClient
	if cfg.Backend.CircuitBreaker {
		doer = httpclient.NewCircuitBreakerClient(
			baseClient,
			httpclient.DefaultCircuitBreakerConfig("marketplace-backend"),
			logger,
		)
	}
	backendClient := backend.New(cfg.Backend.BaseURL, doer, logger)

	// Session persistence.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
	})

	// Activity events. No brokers configured means publishing stays off.
	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(kafka.DefaultProducerConfig(cfg.Kafka.Brokers), logger)
	}
	var activity *event.ActivityPublisher
	if producer != nil {
		activity = event.NewActivityPublisher(producer, cfg.Kafka.ActivityTopic, logger)
	}

	sessions := store.NewSessionStore(redisClient, backendClient, activity, cfg.Session.TTL, logger)
	cart := store.NewCartStore(backendClient, activity, logger)
	wishlist := store.NewWishlistStore(backendClient, activity, logger)
	resolver := images.New(cfg.Images.PublicBaseURL, cfg.Images.DirectBaseURL, cfg.Images.PlaceholderURL)

	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	healthHandler.RegisterNonCritical("backend", func(ctx context.Context) error {
		u, err := url.Parse(cfg.Backend.BaseURL)
		if err != nil {
			return fmt.Errorf("parse backend URL: %w", err)
		}
		d := net.Dialer{Timeout: 2 * time.Second}
		conn, err := d.DialContext(ctx, "tcp", u.Host)
		if err != nil {
			return fmt.Errorf("backend unreachable: %w", err)
		}
		_ = conn.Close()
		return nil
	})
	if producer != nil {
		healthHandler.RegisterNonCritical("kafka", producer.Ping)
	}

	var limiter *handlerhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = handlerhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	router := handlerhttp.NewRouter(handlerhttp.Deps{
		ServiceName:    cfg.ServiceName,
		Catalog:        handlerhttp.NewCatalogHandler(backendClient, resolver, logger),
		Cart:           handlerhttp.NewCartHandler(cart, logger),
		Wishlist:       handlerhttp.NewWishlistHandler(wishlist, logger),
		Auth:           handlerhttp.NewAuthHandler(sessions, logger),
		Admin:          handlerhttp.NewAdminHandler(backendClient, logger),
		Sessions:       sessions,
		Health:         healthHandler,
		RateLimiter:    limiter,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		httpServer:     httpServer,
		redisClient:    redisClient,
		producer:       producer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown stops the application in dependency order: drain HTTP, flush the
// event producer, close Redis, flush spans.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
