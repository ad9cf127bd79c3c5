package model

// Hand is one of the three fixed game choices.
type Hand string

const (
	HandRock     Hand = "ROCK"
	HandPaper    Hand = "PAPER"
	HandScissors Hand = "SCISSORS"
)

// Hands returns all valid hands in a fixed order.
func Hands() []Hand {
	return []Hand{HandRock, HandPaper, HandScissors}
}

// IsValid reports whether h is one of the three hands.
func (h Hand) IsValid() bool {
	switch h {
	case HandRock, HandPaper, HandScissors:
		return true
	}
	return false
}

// Outcome is the result of comparing two hands from the player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLose Outcome = "LOSE"
	OutcomeDraw Outcome = "DRAW"
)

// beats maps each hand to the hand it defeats.
var beats = map[Hand]Hand{
	HandRock:     HandScissors,
	HandPaper:    HandRock,
	HandScissors: HandPaper,
}

// Resolve returns the outcome of player against opponent, from the player's
// perspective. It is fully defined over all nine hand pairings.
func Resolve(player, opponent Hand) Outcome {
	if player == opponent {
		return OutcomeDraw
	}
	if beats[player] == opponent {
		return OutcomeWin
	}
	return OutcomeLose
}
