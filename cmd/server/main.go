package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/collections-admin-api/internal/api"
	"github.com/collections-admin-api/internal/config"
	"github.com/collections-admin-api/internal/database"
	"github.com/collections-admin-api/internal/metrics"
	"github.com/collections-admin-api/internal/notify"
	"github.com/collections-admin-api/internal/repository"
	"github.com/collections-admin-api/internal/service"
	"github.com/collections-admin-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New(config.LogConfig{})
		bootstrap.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info().Msg("Starting Collections Admin API server...")

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.Server.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Notification sinks
	sinks := notify.Multi{notify.NewLogSink(log)}
	health := api.HealthCheckers{db}
	if cfg.Redis.Enabled() {
		rdb, err := database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to redis")
		}
		defer rdb.Close()
		health = append(health, rdb)

		sinks = append(sinks, notify.NewRedisSink(rdb.Client(), cfg.Redis.Channel, cfg.Redis.PublishTimeout, log))
		log.Info().Str("channel", cfg.Redis.Channel).Msg("Publishing notifications to redis")
	}

	m := metrics.New()
	repos := repository.New(db)
	services := service.NewServices(repos, sinks, m, cfg, log)

	if !cfg.Auth.Enabled() {
		log.Warn().Msg("AUTH_JWT_SECRET not set, /v1 is unauthenticated")
	}

	// Initialize router
	router := api.NewRouter(services, cfg, api.Dependencies{Metrics: m, Health: health}, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
