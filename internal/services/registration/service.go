package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/techub/rps/internal/dependencies/clock"
	"github.com/techub/rps/internal/model"
	"github.com/techub/rps/internal/services/stats"
	"github.com/techub/rps/internal/storage"
)

// Service registers new users and seeds their statistics
type Service struct {
	storage storage.Storage
	stats   *stats.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new registration Service
func New(storage storage.Storage, stats *stats.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		stats:   stats,
		clock:   clk,
		logger:  logger,
	}
}

// Register validates the username, checks uniqueness, creates the User and
// seeds a zeroed statistics aggregate. A taken username is a client error
// of the same kind as any other invalid username.
func (s *Service) Register(ctx context.Context, username string) (*model.User, error) {
	if err := model.ValidateUsername(username); err != nil {
		return nil, err
	}

	exists, err := s.storage.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.InvalidUsername(fmt.Sprintf("username already exists: %s", username))
	}

	user := &model.User{
		Username:  username,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same name
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, model.InvalidUsername(fmt.Sprintf("username already exists: %s", username))
		}
		return nil, err
	}

	if err := s.stats.Initialize(ctx, username); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("username", username))
	return user, nil
}
