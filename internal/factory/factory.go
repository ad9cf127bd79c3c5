package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/techub/rps/internal/dependencies/clock"
	"github.com/techub/rps/internal/dependencies/random"
	"github.com/techub/rps/internal/metrics"
	"github.com/techub/rps/internal/ratelimit"
	"github.com/techub/rps/internal/services/game"
	"github.com/techub/rps/internal/services/registration"
	"github.com/techub/rps/internal/services/stats"
	"github.com/techub/rps/internal/storage"
	"github.com/techub/rps/internal/storage/memory"
	redisstorage "github.com/techub/rps/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Observability
	Registry *prometheus.Registry
	Metrics  *metrics.Sink

	// Services
	StatsService        *stats.Service
	GameService         *game.Service
	RegistrationService *registration.Service

	// Admission control
	Limiter *ratelimit.Limiter
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// RateLimit holds admission control parameters (optional)
	// If zero value, defaults to ratelimit.DefaultConfig()
	RateLimit ratelimit.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	rlCfg := cfg.RateLimit
	if rlCfg.Capacity == 0 && rlCfg.RefillInterval == 0 {
		rlCfg = ratelimit.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, rlCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, rlCfg ratelimit.Config, logger *slog.Logger) *App {
	registry := prometheus.NewRegistry()
	sink := metrics.New(registry)

	statsService := stats.New(store, logger)
	selector := game.NewHandSelector(rnd)
	gameService := game.NewService(selector, statsService, sink, clk, logger)
	registrationService := registration.New(store, statsService, clk, logger)
	limiter := ratelimit.New(rlCfg, clk)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		Registry:            registry,
		Metrics:             sink,
		StatsService:        statsService,
		GameService:         gameService,
		RegistrationService: registrationService,
		Limiter:             limiter,
	}
}
