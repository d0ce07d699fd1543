// Package main initializes and starts the task API server, setting up
// configuration, logging, database connections, repositories, services,
// and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/laithkh03/task/internal/config"
	"github.com/laithkh03/task/internal/db"
	"github.com/laithkh03/task/internal/logger"
	"github.com/laithkh03/task/internal/metrics"
	"github.com/laithkh03/task/internal/repository"
	"github.com/laithkh03/task/internal/server/handler/http"
	"github.com/laithkh03/task/internal/service"
	"github.com/laithkh03/task/internal/token"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// The signing secret and database DSN have no usable defaults.
	if options.JWTSecret == "" {
		zapLogger.Fatal("token signing secret is not configured")
	}
	if options.DatabaseDSN == "" {
		zapLogger.Fatal("database DSN is not configured")
	}

	// Initialize PostgreSQL connection and apply migrations.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users and tasks.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	taskRepo := repository.NewPostgresTaskRepository(postgresDB)

	// Token service holds the process-wide signing secret, read-only
	// after this point.
	tokens := token.New(options.JWTSecret)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, tokens)
	taskService := service.NewTaskService(taskRepo)

	// Create HTTP handlers for auth and task endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	taskHandler := &http.TaskHandler{TaskService: taskService}

	// Metrics registry and collector.
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, taskHandler, tokens, zapLogger, collector, metrics.Handler(registry))

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
