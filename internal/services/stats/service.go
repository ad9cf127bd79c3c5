package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/techub/rps/internal/model"
	"github.com/techub/rps/internal/storage"
)

// Service maintains the per-user statistics aggregates
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new statistics Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Initialize seeds a zeroed aggregate for username. Calling it again for
// an existing user leaves the counters untouched.
func (s *Service) Initialize(ctx context.Context, username string) error {
	return s.storage.InitializeStatistics(ctx, username)
}

// RecordGame folds a completed game into the player's aggregate. The
// aggregate is created on the fly if the user was never seeded;
// registration and play are independent entry points.
func (s *Service) RecordGame(ctx context.Context, username string, rec *model.GameRecord) error {
	updated, err := s.storage.UpdateStatistics(ctx, username, func(st *model.UserStatistics) {
		st.Apply(rec)
	})
	if err != nil {
		return err
	}

	s.logger.Info("statistics updated",
		slog.String("username", username),
		slog.String("game_id", rec.ID),
		slog.Int("games_played", updated.GamesPlayed),
	)
	return nil
}

// Get returns the aggregate for username. A username with no User record,
// or a User that was never seeded and never played, is reported as
// USER_NOT_FOUND.
func (s *Service) Get(ctx context.Context, username string) (*model.UserStatistics, error) {
	if _, err := s.storage.GetUser(ctx, username); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.UserNotFound(fmt.Sprintf("user not found: %s", username))
		}
		return nil, err
	}

	st, err := s.storage.GetStatistics(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrStatisticsNotFound) {
			return nil, model.UserNotFound(fmt.Sprintf("statistics not found for user: %s", username))
		}
		return nil, err
	}
	return st, nil
}
