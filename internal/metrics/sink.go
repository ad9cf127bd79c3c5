package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/techub/rps/internal/model"
)

// Sink records game metrics to a prometheus registry and keeps running
// totals for health reporting.
type Sink struct {
	gamesPlayed   *prometheus.CounterVec
	playerHands   *prometheus.CounterVec
	opponentHands *prometheus.CounterVec
	combinations  *prometheus.CounterVec
	gameErrors    *prometheus.CounterVec
	duration      prometheus.Histogram

	totalGames  atomic.Int64
	totalWins   atomic.Int64
	totalLosses atomic.Int64
	totalDraws  atomic.Int64
}

// New creates a Sink and registers its collectors with reg.
func New(reg prometheus.Registerer) *Sink {
	s := &Sink{
		gamesPlayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rps_games_played_total",
			Help: "Total games played by result.",
		}, []string{"result"}),
		playerHands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rps_player_hand_total",
			Help: "Player hand choices.",
		}, []string{"choice"}),
		opponentHands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rps_opponent_hand_total",
			Help: "Opponent hand choices.",
		}, []string{"choice"}),
		combinations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rps_hand_combinations_total",
			Help: "Hand combinations in games.",
		}, []string{"player", "opponent"}),
		gameErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rps_game_errors_total",
			Help: "Game operation failures by error type.",
		}, []string{"type"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "rps_game_duration_seconds",
			Help: "Duration of game operations, including failed ones.",
		}),
	}

	reg.MustRegister(
		s.gamesPlayed,
		s.playerHands,
		s.opponentHands,
		s.combinations,
		s.gameErrors,
		s.duration,
	)

	// Running totals read back by the health endpoint
	reg.MustRegister(totalGauge("rps_games_total", "Total games played.", &s.totalGames))
	reg.MustRegister(totalGauge("rps_wins_total", "Total games won by the player.", &s.totalWins))
	reg.MustRegister(totalGauge("rps_losses_total", "Total games lost by the player.", &s.totalLosses))
	reg.MustRegister(totalGauge("rps_draws_total", "Total games drawn.", &s.totalDraws))

	return s
}

func totalGauge(name, help string, total *atomic.Int64) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
		return float64(total.Load())
	})
}

// StartTimer begins timing a game operation; the returned stop function
// records the elapsed duration.
func (s *Sink) StartTimer() func() {
	timer := prometheus.NewTimer(s.duration)
	return func() { timer.ObserveDuration() }
}

// RecordGamePlayed records the counters for a completed game.
func (s *Sink) RecordGamePlayed(rec *model.GameRecord) {
	if rec == nil {
		return
	}

	s.totalGames.Add(1)
	switch rec.Outcome {
	case model.OutcomeWin:
		s.totalWins.Add(1)
	case model.OutcomeLose:
		s.totalLosses.Add(1)
	case model.OutcomeDraw:
		s.totalDraws.Add(1)
	}

	s.gamesPlayed.WithLabelValues(string(rec.Outcome)).Inc()
	s.playerHands.WithLabelValues(string(rec.PlayerHand)).Inc()
	s.opponentHands.WithLabelValues(string(rec.OpponentHand)).Inc()
	s.combinations.WithLabelValues(string(rec.PlayerHand), string(rec.OpponentHand)).Inc()
}

// RecordError counts a classified game failure by its error-type tag.
func (s *Sink) RecordError(errorType string) {
	s.gameErrors.WithLabelValues(errorType).Inc()
}

// Totals returns the running game totals.
func (s *Sink) Totals() (games, wins, losses, draws int64) {
	return s.totalGames.Load(), s.totalWins.Load(), s.totalLosses.Load(), s.totalDraws.Load()
}

// WinRate returns the percentage of games won, 0 when no games were played.
func (s *Sink) WinRate() float64 {
	games := s.totalGames.Load()
	if games == 0 {
		return 0
	}
	return float64(s.totalWins.Load()) * 100 / float64(games)
}
