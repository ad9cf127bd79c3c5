package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/techub/rps/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{Username: "alice", CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.Username, got.Username)
	s.Equal(user.CreatedAt, got.CreatedAt)
}

func (s *StorageSuite) TestSaveUserRejectsDuplicate() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{Username: "alice"}))

	err := s.storage.SaveUser(s.ctx, &model.User{Username: "alice"})
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUsernameExists() {
	exists, err := s.storage.UsernameExists(s.ctx, "alice")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{Username: "alice"}))

	exists, err = s.storage.UsernameExists(s.ctx, "alice")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestInitializeStatisticsIdempotent() {
	s.Require().NoError(s.storage.InitializeStatistics(s.ctx, "alice"))

	_, err := s.storage.UpdateStatistics(s.ctx, "alice", func(st *model.UserStatistics) {
		st.GamesPlayed = 7
	})
	s.Require().NoError(err)

	s.Require().NoError(s.storage.InitializeStatistics(s.ctx, "alice"))

	st, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(7, st.GamesPlayed)
}

func (s *StorageSuite) TestGetStatisticsNotFound() {
	_, err := s.storage.GetStatistics(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrStatisticsNotFound)
}

func (s *StorageSuite) TestUpdateStatisticsCreatesWhenMissing() {
	updated, err := s.storage.UpdateStatistics(s.ctx, "alice", func(st *model.UserStatistics) {
		st.GamesPlayed++
		st.Wins++
	})
	s.Require().NoError(err)
	s.Equal("alice", updated.Username)
	s.Equal(1, updated.GamesPlayed)
	s.Equal(1, updated.Wins)
}

func (s *StorageSuite) TestUpdateStatisticsIsAtomic() {
	const updates = 100

	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.storage.UpdateStatistics(s.ctx, "alice", func(st *model.UserStatistics) {
				st.GamesPlayed++
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	st, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(updates, st.GamesPlayed)
}

func (s *StorageSuite) TestReadsReturnCopies() {
	s.Require().NoError(s.storage.InitializeStatistics(s.ctx, "alice"))

	st, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	st.GamesPlayed = 99

	fresh, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(0, fresh.GamesPlayed)
}
