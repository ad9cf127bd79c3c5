package storage

import (
	"context"

	"github.com/techub/rps/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations

	// SaveUser persists a new user. Returns model.ErrUsernameTaken if the
	// username is already registered.
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, username string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Statistics operations

	// InitializeStatistics creates a zeroed aggregate if and only if none
	// exists for username. Calling it again is a no-op; existing counters
	// are never reset.
	InitializeStatistics(ctx context.Context, username string) error
	GetStatistics(ctx context.Context, username string) (*model.UserStatistics, error)
	// UpdateStatistics atomically applies update to the aggregate for
	// username, creating a zeroed aggregate first if none exists.
	// Concurrent updates for the same username must all be applied;
	// updates for different usernames must not serialize behind each other.
	UpdateStatistics(ctx context.Context, username string, update func(*model.UserStatistics)) (*model.UserStatistics, error)
}
