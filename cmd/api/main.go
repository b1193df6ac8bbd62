// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vivi-ai/persona-engine/internal/config"
	"github.com/vivi-ai/persona-engine/internal/generation"
	"github.com/vivi-ai/persona-engine/internal/handler"
	"github.com/vivi-ai/persona-engine/internal/middleware"
	natsclient "github.com/vivi-ai/persona-engine/internal/nats"
	"github.com/vivi-ai/persona-engine/internal/notify"
	"github.com/vivi-ai/persona-engine/internal/persona"
	"github.com/vivi-ai/persona-engine/internal/service"
	"github.com/vivi-ai/persona-engine/pkg/logger"
	"github.com/vivi-ai/persona-engine/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting persona engine")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "persona-engine", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to NATS
	nc, err := natsclient.Connect(ctx, natsclient.Config{
		URL:      cfg.NATSURL,
		CAFile:   cfg.NATSCAFile,
		CertFile: cfg.NATSCertFile,
		KeyFile:  cfg.NATSKeyFile,
		Token:    cfg.NATSToken,
	}, log)
	if err != nil {
		log.Error("failed to connect to NATS", zap.Error(err))
		os.Exit(1)
	}
	defer nc.Close()

	// Persona storage lives in a KV bucket
	kv, err := nc.EnsurePersonaBucket(ctx)
	if err != nil {
		log.Error("failed to ensure persona bucket", zap.Error(err))
		os.Exit(1)
	}
	personaStore := persona.NewKVStore(kv, log)

	// Notification queue, optionally mirrored to a JetStream audit trail
	queueOpts := []notify.Option{}
	if cfg.NotificationAudit {
		auditor := natsclient.NewNotificationAuditor(nc)
		if err := auditor.EnsureStream(ctx); err != nil {
			log.Warn("failed to ensure notification audit stream", zap.Error(err))
		} else {
			queueOpts = append(queueOpts, notify.WithAuditor(auditor))
		}
	}
	queue := notify.NewQueue(cfg.NotificationCapacity, queueOpts...)

	// Generation client for the configured provider
	generator, err := generation.NewClient(generation.Provider(cfg.GenerationProvider), generation.Config{
		EndpointURL:     cfg.GenerationURL,
		EndpointAPIKey:  cfg.GenerationAPIKey,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
	})
	if err != nil {
		log.Error("failed to create generation client", zap.Error(err))
		os.Exit(1)
	}
	log.Info("generation client ready", zap.String("provider", generator.Name()))

	// Initialize services
	personaSvc := service.NewPersonaService(personaStore, log)
	composerSvc := service.NewComposerService(personaSvc, generator, queue, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(nc)
	personaHandler := handler.NewPersonaHandler(personaSvc, log)
	packHandler := handler.NewPackHandler(personaSvc, log)
	composeHandler := handler.NewComposeHandler(composerSvc, log)
	notificationHandler := handler.NewNotificationHandler(composerSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Link", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes with authentication
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		// Persona profile
		r.Get("/persona", personaHandler.Get)
		r.Put("/persona", personaHandler.Update)

		// Agent packs
		r.Get("/agent-packs", packHandler.List)
		r.Post("/agent-packs/{id}/apply", packHandler.Apply)

		// Composition
		r.Route("/compose", func(r chi.Router) {
			r.Post("/review-response", composeHandler.ReviewResponse)
			r.Post("/follow-up", composeHandler.FollowUp)
			r.Post("/content", composeHandler.Content)
		})

		// Post scheduling
		r.Post("/posts/schedule", composeHandler.SchedulePost)

		// Notifications
		r.Get("/notifications", notificationHandler.List)
		r.Post("/notifications", notificationHandler.Push)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
