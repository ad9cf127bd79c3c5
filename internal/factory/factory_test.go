package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techub/rps/internal/model"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, app.Storage)
	require.NotNil(t, app.GameService)
	require.NotNil(t, app.RegistrationService)
	require.NotNil(t, app.StatsService)
	require.NotNil(t, app.Limiter)
	require.NotNil(t, app.Registry)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "cassandra"})
	require.Error(t, err)
}

func TestNewRequiresRedisConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	require.Error(t, err)
}

// Full path through the wired application: register, play, read back the
// aggregate and the running totals.
func TestWiredApplicationFlow(t *testing.T) {
	app := NewTestApp()
	ctx := context.Background()

	user, err := app.RegistrationService.Register(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// ROCK vs SCISSORS -> win, ROCK vs PAPER -> lose, ROCK vs ROCK -> draw
	app.MockRandom.QueueIntn(2, 1, 0)
	for i := 0; i < 3; i++ {
		_, err := app.GameService.Play(ctx, "alice", model.HandRock)
		require.NoError(t, err)
	}

	st, err := app.StatsService.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, st.GamesPlayed)
	assert.Equal(t, 1, st.Wins)
	assert.Equal(t, 1, st.Losses)
	assert.Equal(t, 1, st.Draws)

	games, wins, losses, draws := app.Metrics.Totals()
	assert.Equal(t, int64(3), games)
	assert.Equal(t, int64(1), wins)
	assert.Equal(t, int64(1), losses)
	assert.Equal(t, int64(1), draws)
}
