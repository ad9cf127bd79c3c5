package game

import (
	"github.com/techub/rps/internal/dependencies/random"
	"github.com/techub/rps/internal/model"
)

// HandSelector draws an unpredictable hand for the computer opponent.
// Predictability here is a trust boundary, so draws come from a
// cryptographically strong source.
type HandSelector struct {
	random random.Random
}

// NewHandSelector creates a HandSelector backed by the given random source
func NewHandSelector(rnd random.Random) *HandSelector {
	return &HandSelector{random: rnd}
}

// Draw picks one of the three hands uniformly at random.
func (s *HandSelector) Draw() (model.Hand, error) {
	hands := model.Hands()
	idx, err := s.random.Intn(len(hands))
	if err != nil {
		return "", model.RandomGenerationError("failed to generate random hand", err)
	}
	return hands[idx], nil
}
