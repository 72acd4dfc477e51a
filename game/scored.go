package game

import "math"

// ScoredState is a state padded with everything the search engine needs
// without rescanning the board: the cached static evaluation, the number
// of placed discs (drives draw detection) and the running count of
// mismatched mirror-column pairs (drives symmetry pruning).
type ScoredState struct {
	State State
	Eval  float64
	Discs int
	Asym  int
}

// NewScoredState seeds the caches with full-board scans. Successors should
// be derived with Geometry.Next instead.
func NewScoredState(s State) ScoredState {
	return ScoredState{
		State: s,
		Eval:  Eval(s),
		Discs: s.Board.CountDiscs(),
		Asym:  mirrorMismatches(s.Board),
	}
}

// Symmetric reports whether the position is an exact left-right mirror of
// itself, in which case mirrored moves are equivalent and only one of each
// pair needs exploring.
func (sc ScoredState) Symmetric() bool {
	return sc.Asym == 0
}

// Next derives the scored successor for mv from the cached values and the
// precomputed rays through the move's cell alone. For every legal move the
// resulting Eval equals Eval(Play(state, mv)) exactly, including the
// infinite decided cases.
func (g *Geometry) Next(sc ScoredState, mv Move) (ScoredState, error) {
	nextState, err := Play(sc.State, mv)
	if err != nil {
		return ScoredState{}, err
	}
	mover := sc.State.Turn
	moverCell := CellFromPlayer(mover)
	board := sc.State.Board

	won := false
	blockedWindows := 0
	for _, axis := range g.Axes(mv.Row, mv.Col) {
		mine := countOwn(board, axis.Pos, moverCell) + countOwn(board, axis.Neg, moverCell)
		if mine+1 >= winLen {
			won = true
			break
		}
		// The mover's own open windows survive their own disc; what the move
		// changes is the opponent's count, which loses every window through
		// the pivot that held no mover disc before.
		pos := countOpen(board, axis.Pos, moverCell)
		neg := countOpen(board, axis.Neg, moverCell)
		// A window through the pivot fits in the contiguous open segment
		// exactly pos+neg-2 ways; the pivot itself covers the fourth cell,
		// and the rays already cap each side at winLen-1 cells.
		if windows := pos + neg - 2; windows > 0 {
			blockedWindows += windows
		}
	}

	next := ScoredState{
		State: nextState,
		Discs: sc.Discs + 1,
		Asym:  sc.Asym + mirrorDelta(board, mv, moverCell),
	}
	switch {
	case won:
		// A completing move wins even when it also fills the last cell.
		if mover == P1 {
			next.Eval = math.Inf(1)
		} else {
			next.Eval = math.Inf(-1)
		}
	case next.Discs == board.Rows()*board.Cols():
		next.Eval = 0.0
	case mover == P1:
		next.Eval = sc.Eval + float64(blockedWindows)
	default:
		next.Eval = sc.Eval - float64(blockedWindows)
	}
	return next, nil
}

// countOwn walks a ray outward and counts the mover's contiguous discs,
// stopping at the first empty or opposing cell. Used for realized wins.
func countOwn(b Board, ray Ray, moverCell Cell) int {
	count := 0
	for _, coord := range ray {
		if b.At(coord.Row, coord.Col) != moverCell {
			break
		}
		count++
	}
	return count
}

// countOpen walks a ray outward and counts contiguous cells still
// completable by the opponent, stopping at the first mover disc.
func countOpen(b Board, ray Ray, moverCell Cell) int {
	count := 0
	for _, coord := range ray {
		if b.At(coord.Row, coord.Col) == moverCell {
			break
		}
		count++
	}
	return count
}

// mirrorDelta is the change in mismatched mirror pairs caused by placing
// moverCell at mv. The exact center column of an odd-width board has no
// mirror pair. A pair whose mirror cell already holds the opponent stays
// mismatched, so it contributes no change.
func mirrorDelta(b Board, mv Move, moverCell Cell) int {
	mirrorCol := b.Cols() - 1 - mv.Col
	if mirrorCol == mv.Col {
		return 0
	}
	switch b.At(mv.Row, mirrorCol) {
	case CellEmpty:
		return 1
	case moverCell:
		return -1
	default:
		return 0
	}
}

// mirrorMismatches recounts the asymmetry from scratch, used to seed
// ScoredState at the root of a search.
func mirrorMismatches(b Board) int {
	count := 0
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols()/2; col++ {
			if b.At(row, col) != b.At(row, b.Cols()-1-col) {
				count++
			}
		}
	}
	return count
}
