package stats

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/techub/rps/internal/model"
	"github.com/techub/rps/internal/storage/memory"
	"github.com/techub/rps/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) record(id string, outcome model.Outcome) *model.GameRecord {
	return &model.GameRecord{
		ID:           id,
		PlayerHand:   model.HandRock,
		OpponentHand: model.HandScissors,
		Outcome:      outcome,
		OccurredAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *ServiceSuite) TestInitializeSeedsZeroedAggregate() {
	s.Require().NoError(s.service.Initialize(s.ctx, "alice"))

	st, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", st.Username)
	s.Equal(0, st.GamesPlayed)
	s.Equal(0, st.Wins)
	s.Equal(0, st.Losses)
	s.Equal(0, st.Draws)
	s.Empty(st.LastGameID)
	s.Nil(st.LastGamePlayedAt)
}

func (s *ServiceSuite) TestInitializeIsIdempotent() {
	s.Require().NoError(s.service.Initialize(s.ctx, "alice"))
	s.Require().NoError(s.service.RecordGame(s.ctx, "alice", s.record("g1", model.OutcomeWin)))

	// A second initialize must not reset accumulated counters
	s.Require().NoError(s.service.Initialize(s.ctx, "alice"))

	st, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(1, st.GamesPlayed)
	s.Equal(1, st.Wins)
}

func (s *ServiceSuite) TestRecordGameCreatesAggregateOnFirstGame() {
	// No Initialize beforehand; play is an independent entry point
	s.Require().NoError(s.service.RecordGame(s.ctx, "alice", s.record("g1", model.OutcomeDraw)))

	st, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(1, st.GamesPlayed)
	s.Equal(1, st.Draws)
	s.Equal("g1", st.LastGameID)
}

func (s *ServiceSuite) TestRecordGameFoldsEachOutcome() {
	outcomes := []model.Outcome{
		model.OutcomeWin, model.OutcomeWin,
		model.OutcomeLose,
		model.OutcomeDraw, model.OutcomeDraw, model.OutcomeDraw,
	}
	for i, outcome := range outcomes {
		id := fmt.Sprintf("g%d", i)
		s.Require().NoError(s.service.RecordGame(s.ctx, "alice", s.record(id, outcome)))
	}

	st, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(6, st.GamesPlayed)
	s.Equal(2, st.Wins)
	s.Equal(1, st.Losses)
	s.Equal(3, st.Draws)
	s.Equal("g5", st.LastGameID)
	s.Equal(st.GamesPlayed, st.Wins+st.Losses+st.Draws)
}

func (s *ServiceSuite) TestRecordGameConcurrentUpdatesLoseNothing() {
	const games = 50

	var wg sync.WaitGroup
	for i := 0; i < games; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := s.record(fmt.Sprintf("g%d", i), model.OutcomeWin)
			s.NoError(s.service.RecordGame(s.ctx, "alice", rec))
		}(i)
	}
	wg.Wait()

	st, err := s.storage.GetStatistics(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(games, st.GamesPlayed)
	s.Equal(games, st.Wins)
}

func (s *ServiceSuite) TestGetReturnsAggregate() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{Username: "alice"}))
	s.Require().NoError(s.service.Initialize(s.ctx, "alice"))
	s.Require().NoError(s.service.RecordGame(s.ctx, "alice", s.record("g1", model.OutcomeLose)))

	st, err := s.service.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(1, st.GamesPlayed)
	s.Equal(1, st.Losses)
}

func (s *ServiceSuite) TestGetUnknownUser() {
	_, err := s.service.Get(s.ctx, "nobody")
	s.requireUserNotFound(err)
}

func (s *ServiceSuite) TestGetUserWithoutStatistics() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{Username: "alice"}))

	_, err := s.service.Get(s.ctx, "alice")
	s.requireUserNotFound(err)
}

func (s *ServiceSuite) requireUserNotFound(err error) {
	s.T().Helper()
	s.Require().Error(err)
	derr, ok := model.AsDomainError(err)
	s.Require().True(ok)
	s.Equal(model.CodeUserNotFound, derr.Code)
	s.Equal(model.ClientError, derr.Class)
}
