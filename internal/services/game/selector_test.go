package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techub/rps/internal/dependencies/mocks"
	"github.com/techub/rps/internal/dependencies/random"
	"github.com/techub/rps/internal/model"
)

func TestDrawCoversAllHands(t *testing.T) {
	// Statistical: with 200 uniform draws the chance of missing a hand is
	// negligible.
	selector := NewHandSelector(random.New())

	seen := make(map[model.Hand]int)
	for i := 0; i < 200; i++ {
		hand, err := selector.Draw()
		require.NoError(t, err)
		require.True(t, hand.IsValid())
		seen[hand]++
	}

	assert.Len(t, seen, 3)
}

func TestDrawFollowsRandomSource(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(0, 1, 2)
	selector := NewHandSelector(rnd)

	for _, want := range []model.Hand{model.HandRock, model.HandPaper, model.HandScissors} {
		hand, err := selector.Draw()
		require.NoError(t, err)
		assert.Equal(t, want, hand)
	}
}

func TestDrawEntropyFailure(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.Err = errors.New("entropy unavailable")
	selector := NewHandSelector(rnd)

	_, err := selector.Draw()
	require.Error(t, err)

	derr, ok := model.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, model.CodeRandomGeneration, derr.Code)
	assert.Equal(t, model.ServerError, derr.Class)
	assert.ErrorIs(t, err, rnd.Err)
}
