package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/techub/rps/internal/dependencies/clock"
	"github.com/techub/rps/internal/model"
)

// Metrics records operational metrics for game operations.
type Metrics interface {
	// StartTimer begins timing an operation; the returned stop function
	// records the elapsed duration.
	StartTimer() func()
	RecordGamePlayed(rec *model.GameRecord)
	RecordError(errorType string)
}

// Statistics folds completed games into per-user aggregates.
type Statistics interface {
	RecordGame(ctx context.Context, username string, rec *model.GameRecord) error
}

// Service orchestrates the game transaction: validate, draw, resolve,
// persist the aggregate, record metrics.
type Service struct {
	selector *HandSelector
	stats    Statistics
	metrics  Metrics
	clock    clock.Clock
	logger   *slog.Logger
}

// NewService creates a new game Service
func NewService(selector *HandSelector, stats Statistics, metrics Metrics, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		selector: selector,
		stats:    stats,
		metrics:  metrics,
		clock:    clk,
		logger:   logger,
	}
}

// Play runs one game for playerHand against a freshly drawn opponent hand.
// An empty username plays anonymously and leaves statistics untouched; a
// present username is validated and its aggregate updated. The operation
// timer spans the whole call, and every failure is counted exactly once
// under its error-type tag before being returned.
func (s *Service) Play(ctx context.Context, username string, playerHand model.Hand) (*model.GameRecord, error) {
	stop := s.metrics.StartTimer()
	defer stop()

	rec, err := s.play(ctx, username, playerHand)
	if err != nil {
		derr := classify(err)
		s.metrics.RecordError(errorTag(derr))
		s.logger.Error("failed to play game",
			slog.String("username", username),
			slog.String("error", derr.Error()),
		)
		return nil, derr
	}

	s.metrics.RecordGamePlayed(rec)
	return rec, nil
}

func (s *Service) play(ctx context.Context, username string, playerHand model.Hand) (*model.GameRecord, error) {
	if username != "" {
		if err := model.ValidateUsername(username); err != nil {
			return nil, err
		}
	}
	if playerHand == "" {
		return nil, model.InvalidHand("player hand is required")
	}
	if !playerHand.IsValid() {
		return nil, model.InvalidHand(fmt.Sprintf("invalid hand %q: must be one of ROCK, PAPER, SCISSORS", playerHand))
	}

	opponentHand, err := s.selector.Draw()
	if err != nil {
		return nil, err
	}

	rec := &model.GameRecord{
		ID:           uuid.NewString(),
		PlayerHand:   playerHand,
		OpponentHand: opponentHand,
		Outcome:      model.Resolve(playerHand, opponentHand),
		OccurredAt:   s.clock.Now(),
	}

	// The game only counts as played once the aggregate is durably
	// updated; a statistics failure aborts the whole operation.
	if username != "" {
		if err := s.stats.RecordGame(ctx, username, rec); err != nil {
			return nil, model.GameError("failed to record game statistics", err)
		}
	}

	s.logger.Info("game played",
		slog.String("game_id", rec.ID),
		slog.String("player_hand", string(rec.PlayerHand)),
		slog.String("opponent_hand", string(rec.OpponentHand)),
		slog.String("outcome", string(rec.Outcome)),
	)

	return rec, nil
}

// classify wraps unclassified failures as GAME_ERROR, preserving the cause.
func classify(err error) *model.DomainError {
	if derr, ok := model.AsDomainError(err); ok {
		return derr
	}
	return model.GameError("failed to play game", err)
}

// errorTag derives the metrics tag for a failure from its error code,
// e.g. INVALID_HAND -> invalid_hand.
func errorTag(derr *model.DomainError) string {
	return strings.ToLower(derr.Code)
}
