package ratelimit

import (
	"sync"
	"time"

	"github.com/techub/rps/internal/dependencies/clock"
)

// Config holds token bucket parameters
type Config struct {
	// Capacity is the number of requests admitted per refill interval.
	Capacity int
	// RefillInterval is how often a bucket replenishes to full capacity.
	// Refill is interval-based: the whole capacity returns at once, tokens
	// do not trickle back smoothly.
	RefillInterval time.Duration
}

// DefaultConfig returns the production admission limits
func DefaultConfig() Config {
	return Config{
		Capacity:       30,
		RefillInterval: time.Minute,
	}
}

// Decision is the admission result for a single request.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter admits requests per client identity using interval-refill token
// buckets. Buckets are created lazily and retained for the lifetime of the
// process; under many distinct client identities the map grows without
// bound.
type Limiter struct {
	cfg   Config
	clock clock.Clock

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens   int
	refillAt time.Time
}

// New creates a Limiter
func New(cfg Config, clk clock.Clock) *Limiter {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = DefaultConfig().RefillInterval
	}
	return &Limiter{
		cfg:     cfg,
		clock:   clk,
		buckets: make(map[string]*bucket),
	}
}

// Allow attempts to consume one token for client. When the bucket is empty
// the decision carries a retry-after hint of one refill interval.
func (l *Limiter) Allow(client string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, refillAt: now.Add(l.cfg.RefillInterval)}
		l.buckets[client] = b
	} else if !now.Before(b.refillAt) {
		b.tokens = l.cfg.Capacity
		b.refillAt = now.Add(l.cfg.RefillInterval)
	}

	if b.tokens <= 0 {
		return Decision{
			Allowed:    false,
			Limit:      l.cfg.Capacity,
			Remaining:  0,
			RetryAfter: l.cfg.RefillInterval,
		}
	}

	b.tokens--
	return Decision{
		Allowed:   true,
		Limit:     l.cfg.Capacity,
		Remaining: b.tokens,
	}
}
