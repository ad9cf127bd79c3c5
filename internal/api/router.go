package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techub/rps/internal/api/handler"
	"github.com/techub/rps/internal/api/middleware"
	"github.com/techub/rps/internal/metrics"
	"github.com/techub/rps/internal/ratelimit"
	"github.com/techub/rps/internal/services/game"
	"github.com/techub/rps/internal/services/registration"
	"github.com/techub/rps/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	GameService         *game.Service
	RegistrationService *registration.Service
	StatsService        *stats.Service
	Sink                *metrics.Sink
	Limiter             *ratelimit.Limiter
	Registry            *prometheus.Registry
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameService)
	userHandler := handler.NewUserHandler(cfg.RegistrationService, cfg.StatsService)
	healthHandler := handler.NewHealthHandler(cfg.Sink)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	rateLimitMiddleware := middleware.RateLimit(cfg.Limiter, cfg.Logger)

	// API subrouter: admission control gates every request path before the
	// handlers run
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(rateLimitMiddleware)

	api.HandleFunc("/game/play", gameHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/{username}/statistics", userHandler.Statistics).Methods(http.MethodGet)

	// Operational endpoints live outside the rate-limited API surface
	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	if cfg.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
