// Package agent provides the move-selecting players: a search-based
// minimax engine, a uniform-random mover and a delegating human agent.
package agent

import "github.com/halvorlinder/Connect-4-AI/game"

// Agent produces exactly one legal move for a position. Implementations
// must not mutate the given state. Callers are responsible for never
// asking for a move on a board without legal moves.
type Agent interface {
	NextMove(s game.State) game.Move
}
