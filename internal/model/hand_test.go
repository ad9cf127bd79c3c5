package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAllPairs(t *testing.T) {
	cases := []struct {
		player   Hand
		opponent Hand
		want     Outcome
	}{
		{HandRock, HandRock, OutcomeDraw},
		{HandRock, HandPaper, OutcomeLose},
		{HandRock, HandScissors, OutcomeWin},
		{HandPaper, HandRock, OutcomeWin},
		{HandPaper, HandPaper, OutcomeDraw},
		{HandPaper, HandScissors, OutcomeLose},
		{HandScissors, HandRock, OutcomeLose},
		{HandScissors, HandPaper, OutcomeWin},
		{HandScissors, HandScissors, OutcomeDraw},
	}

	for _, tc := range cases {
		t.Run(string(tc.player)+"_vs_"+string(tc.opponent), func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.player, tc.opponent))
		})
	}
}

func TestHandsReturnsAllThree(t *testing.T) {
	hands := Hands()
	assert.Len(t, hands, 3)
	assert.Contains(t, hands, HandRock)
	assert.Contains(t, hands, HandPaper)
	assert.Contains(t, hands, HandScissors)
}

func TestHandIsValid(t *testing.T) {
	assert.True(t, HandRock.IsValid())
	assert.True(t, HandPaper.IsValid())
	assert.True(t, HandScissors.IsValid())
	assert.False(t, Hand("").IsValid())
	assert.False(t, Hand("LIZARD").IsValid())
	assert.False(t, Hand("rock").IsValid())
}
