package agent

import (
	"math"
	"sort"
	"time"

	"github.com/halvorlinder/Connect-4-AI/game"
)

// SearchStats collects optional search diagnostics. A nil stats pointer
// disables all collection; nothing in the engine depends on it.
type SearchStats struct {
	Nodes          int
	TTProbes       int
	TTHits         int
	TTStores       int
	Cutoffs        int
	CompletedDepth int
	DepthDurations []time.Duration
}

// searcher runs one bounded alpha-beta search. The transposition map it
// allocates lives for exactly one root call and is never shared.
type searcher struct {
	geom  *game.Geometry
	stats *SearchStats
}

// bestMove expands the symmetry-pruned legal moves, orders the successors
// by cached evaluation for the side to move and recurses with running
// alpha-beta bounds. Ties go to the first candidate in sorted order.
func (e *searcher) bestMove(s game.State, depth int) (game.Move, float64) {
	root := game.NewScoredState(s)
	visited := make(map[string]float64)

	moves := prunedLegal(root)
	type candidate struct {
		move game.Move
		next game.ScoredState
	}
	candidates := make([]candidate, 0, len(moves))
	for _, mv := range moves {
		next, err := e.geom.Next(root, mv)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{move: mv, next: next})
	}

	maximizing := s.Turn == game.P1
	sort.SliceStable(candidates, func(i, j int) bool {
		if maximizing {
			return candidates[i].next.Eval > candidates[j].next.Eval
		}
		return candidates[i].next.Eval < candidates[j].next.Eval
	})

	alpha := math.Inf(-1)
	beta := math.Inf(1)
	bestIndex := 0
	bestValue := math.Inf(-1)
	if !maximizing {
		bestValue = math.Inf(1)
	}
	for i, cand := range candidates {
		value := e.minMax(cand.next, depth, alpha, beta, visited)
		if maximizing {
			if value > bestValue {
				bestValue = value
				bestIndex = i
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if value < bestValue {
				bestValue = value
				bestIndex = i
			}
			if value < beta {
				beta = value
			}
		}
	}
	return candidates[bestIndex].move, bestValue
}

// minMax is a fail-hard alpha-beta walk over ScoredState successors.
// Memoized values are reused regardless of the depth they were computed
// at; the map is rebuilt for every root call, which bounds the skew this
// intentional approximation can introduce.
func (e *searcher) minMax(sc game.ScoredState, depth int, alpha, beta float64, visited map[string]float64) float64 {
	if e.stats != nil {
		e.stats.Nodes++
		e.stats.TTProbes++
	}
	key := sc.State.Key()
	if value, ok := visited[key]; ok {
		if e.stats != nil {
			e.stats.TTHits++
		}
		return value
	}
	if math.IsInf(sc.Eval, 0) {
		return sc.Eval
	}
	if depth == 0 {
		return sc.Eval
	}

	moves := prunedLegal(sc)
	successors := make([]game.ScoredState, 0, len(moves))
	for _, mv := range moves {
		next, err := e.geom.Next(sc, mv)
		if err != nil {
			continue
		}
		successors = append(successors, next)
	}
	if len(successors) == 0 {
		// Full board: the cached eval already holds the draw value.
		return sc.Eval
	}

	maximizing := sc.State.Turn == game.P1
	sort.SliceStable(successors, func(i, j int) bool {
		if maximizing {
			return successors[i].Eval > successors[j].Eval
		}
		return successors[i].Eval < successors[j].Eval
	})

	var value float64
	if maximizing {
		value = math.Inf(-1)
		for i := range successors {
			v := e.minMax(successors[i], depth-1, alpha, beta, visited)
			if v > value {
				value = v
			}
			if v > alpha {
				alpha = v
			}
			if alpha > beta {
				// A bound, not an exact value: do not memoize.
				if e.stats != nil {
					e.stats.Cutoffs++
				}
				return alpha
			}
		}
	} else {
		value = math.Inf(1)
		for i := range successors {
			v := e.minMax(successors[i], depth-1, alpha, beta, visited)
			if v < value {
				value = v
			}
			if v < beta {
				beta = v
			}
			if beta < alpha {
				if e.stats != nil {
					e.stats.Cutoffs++
				}
				return beta
			}
		}
	}
	visited[key] = value
	if e.stats != nil {
		e.stats.TTStores++
	}
	return value
}

// prunedLegal truncates the legal moves of a self-mirrored position to one
// move per mirror pair; exploring the other half cannot change the value.
func prunedLegal(sc game.ScoredState) []game.Move {
	moves := game.Legal(sc.State)
	if sc.Symmetric() {
		moves = moves[:(len(moves)+1)/2]
	}
	return moves
}
