// Package http provides HTTP routing and middleware configuration
// for the task API.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/laithkh03/task/internal/metrics"
	"github.com/laithkh03/task/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// task API.
//
// Routes:
//
//	POST   /auth/register → authHandler.Register
//	POST   /auth/login    → authHandler.Login
//	POST   /tasks         → taskHandler.Create (protected)
//	GET    /tasks         → taskHandler.List   (protected)
//	GET    /tasks/{id}    → taskHandler.Get    (protected)
//	PUT    /tasks/{id}    → taskHandler.Update (protected)
//	DELETE /tasks/{id}    → taskHandler.Delete (protected)
//	GET    /metrics       → Prometheus scrape endpoint
//
// Middleware chain (applied in order):
//  1. WithRequestLogging(logger) — logs incoming requests
//  2. collector.Middleware       — records request metrics
//  3. JWTAuth(verifier)          — enforces bearer-token auth (task routes only)
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
	collector *metrics.Collector,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Record request counts and latency
	r.Use(collector.Middleware)

	// Public endpoints
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected group: requires a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(verifier))

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.List)
			r.Get("/{id}", taskHandler.Get)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})
	})

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	return r
}
