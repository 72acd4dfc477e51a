package game

import "math/rand"

// RandomPosition plays up to plies uniformly random legal moves from an
// empty board, stopping early if the game is decided. Used by tests and
// the evaluator benchmark.
func RandomPosition(r *rand.Rand, rows, cols, plies int) State {
	s := NewState(rows, cols)
	for i := 0; i < plies; i++ {
		if Result(s) != OutcomeNone {
			break
		}
		moves := Legal(s)
		if len(moves) == 0 {
			break
		}
		next, err := Play(s, moves[r.Intn(len(moves))])
		if err != nil {
			break
		}
		s = next
	}
	return s
}

// RandomPositions samples count positions of varying depth.
func RandomPositions(r *rand.Rand, rows, cols, count int) []State {
	states := make([]State, 0, count)
	maxPlies := rows * cols
	for i := 0; i < count; i++ {
		states = append(states, RandomPosition(r, rows, cols, r.Intn(maxPlies+1)))
	}
	return states
}
