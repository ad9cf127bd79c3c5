package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techub/rps/internal/model"
	"github.com/techub/rps/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.MaxUpdateRetries <= 0 {
		cfg.MaxUpdateRetries = DefaultConfig().MaxUpdateRetries
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// SET NX guards username uniqueness against concurrent registrations
	set, err := s.client.SetNX(ctx, userKey(user.Username), data, 0).Result()
	if err != nil {
		return err
	}
	if !set {
		return model.ErrUsernameTaken
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) UsernameExists(ctx context.Context, username string) (bool, error) {
	n, err := s.client.Exists(ctx, userKey(username)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Statistics operations

func (s *Storage) InitializeStatistics(ctx context.Context, username string) error {
	data, err := json.Marshal(model.NewUserStatistics(username))
	if err != nil {
		return err
	}

	// SET NX keeps initialization idempotent: an existing aggregate is
	// never overwritten with zeroes.
	return s.client.SetNX(ctx, statisticsKey(username), data, 0).Err()
}

func (s *Storage) GetStatistics(ctx context.Context, username string) (*model.UserStatistics, error) {
	data, err := s.client.Get(ctx, statisticsKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStatisticsNotFound
		}
		return nil, err
	}

	var stats model.UserStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Storage) UpdateStatistics(ctx context.Context, username string, update func(*model.UserStatistics)) (*model.UserStatistics, error) {
	key := statisticsKey(username)
	var result *model.UserStatistics

	// Optimistic WATCH transaction: read (or default to zeroed), apply the
	// update, write back only if the key was untouched in between. A lost
	// race surfaces as TxFailedErr and the cycle is retried.
	txf := func(tx *redis.Tx) error {
		var stats model.UserStatistics

		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			stats = *model.NewUserStatistics(username)
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(data, &stats); err != nil {
				return err
			}
		}

		update(&stats)

		out, err := json.Marshal(&stats)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		if err == nil {
			result = &stats
		}
		return err
	}

	for i := 0; i < s.cfg.MaxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("statistics update for %q lost %d consecutive races", username, s.cfg.MaxUpdateRetries)
}
