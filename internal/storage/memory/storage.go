package memory

import (
	"context"
	"sync"

	"github.com/techub/rps/internal/model"
	"github.com/techub/rps/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	users map[string]*model.User
	stats map[string]*model.UserStatistics

	// Per-username locks serialize statistics read-modify-write cycles
	// without blocking updates for other users.
	lockMu    sync.Mutex
	statLocks map[string]*sync.Mutex
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:     make(map[string]*model.User),
		stats:     make(map[string]*model.UserStatistics),
		statLocks: make(map[string]*sync.Mutex),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return model.ErrUsernameTaken
	}
	u := *user
	s.users[user.Username] = &u
	return nil
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) UsernameExists(ctx context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[username]
	return ok, nil
}

// Statistics operations

func (s *Storage) InitializeStatistics(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stats[username]; ok {
		return nil
	}
	s.stats[username] = model.NewUserStatistics(username)
	return nil
}

func (s *Storage) GetStatistics(ctx context.Context, username string) (*model.UserStatistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[username]
	if !ok {
		return nil, model.ErrStatisticsNotFound
	}
	st := *stats
	return &st, nil
}

func (s *Storage) UpdateStatistics(ctx context.Context, username string, update func(*model.UserStatistics)) (*model.UserStatistics, error) {
	lock := s.statLock(username)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	existing, ok := s.stats[username]
	s.mu.RUnlock()

	var current model.UserStatistics
	if ok {
		current = *existing
	} else {
		current = *model.NewUserStatistics(username)
	}

	update(&current)

	s.mu.Lock()
	s.stats[username] = &current
	s.mu.Unlock()

	result := current
	return &result, nil
}

// statLock returns the per-username statistics lock, creating it lazily.
func (s *Storage) statLock(username string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	lock, ok := s.statLocks[username]
	if !ok {
		lock = &sync.Mutex{}
		s.statLocks[username] = lock
	}
	return lock
}
