package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/fraudlens/fraudlens/internal/api/handlers"
	"github.com/fraudlens/fraudlens/internal/api/middleware"
	"github.com/fraudlens/fraudlens/internal/config"
	"github.com/fraudlens/fraudlens/internal/pkg/logger"
	"github.com/fraudlens/fraudlens/internal/pkg/metrics"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Case         *handlers.CaseHandler
	Integration  *handlers.IntegrationHandler
	Subscription *handlers.SubscriptionHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Health checks
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)

		// Prometheus metrics
		r.Handle("/metrics", metrics.Handler())

		// Session lifecycle. Me checks its own session so that missing
		// credentials produce the same 401 body as everywhere else.
		r.Post("/auth/signup", h.Auth.Signup)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)
		r.Get("/auth/me", h.Auth.Me)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth.JWTSecret))
		r.Use(middleware.AccountRateLimit(25, 50)) // 25 req/sec per account, burst of 50

		r.Delete("/auth/me", h.Auth.DeleteAccount)

		// Cases
		r.Route("/api/v1/cases", func(r chi.Router) {
			r.Get("/", h.Case.List)
			r.Post("/", h.Case.Create)
			r.Get("/{id}", h.Case.Get)
			r.Post("/{id}/upload", h.Case.Upload)
			r.Patch("/{id}/status", h.Case.UpdateStatus)
			r.Delete("/{id}", h.Case.Delete)
		})

		// Integrations
		r.Route("/api/v1/integrations", func(r chi.Router) {
			r.Get("/", h.Integration.List)
			r.Post("/", h.Integration.Create)
			r.Get("/{id}", h.Integration.Get)
			r.Put("/{id}", h.Integration.Update)
			r.Post("/{id}/deactivate", h.Integration.Deactivate)
			r.Delete("/{id}", h.Integration.Delete)
		})

		// Subscription
		r.Route("/api/v1/subscription", func(r chi.Router) {
			r.Get("/", h.Subscription.Get)
			r.Put("/tier", h.Subscription.ChangeTier)
		})
	})

	return r
}
