package agent

import (
	"math/rand"

	"github.com/halvorlinder/Connect-4-AI/game"
)

// Random selects uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) NextMove(s game.State) game.Move {
	moves := game.Legal(s)
	return moves[a.rng.Intn(len(moves))]
}
