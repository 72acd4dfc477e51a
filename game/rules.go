package game

import "errors"

var (
	ErrOutOfBounds = errors.New("move is outside the board")
	ErrOccupied    = errors.New("target cell is occupied")
	ErrFloating    = errors.New("disc would rest on an empty cell")
)

// Play returns the successor of s after mv, or an error if the move is
// illegal. The input state is never modified and the error path has no
// side effects.
func Play(s State, mv Move) (State, error) {
	if !s.Board.InBounds(mv.Row, mv.Col) {
		return State{}, ErrOutOfBounds
	}
	if s.Board.At(mv.Row, mv.Col) != CellEmpty {
		return State{}, ErrOccupied
	}
	if mv.Row > 0 && s.Board.At(mv.Row-1, mv.Col) == CellEmpty {
		return State{}, ErrFloating
	}
	next := s.Clone()
	next.Board.set(mv.Row, mv.Col, CellFromPlayer(s.Turn))
	next.Turn = s.Turn.Other()
	return next, nil
}

// Legal returns one move per non-full column in ascending column order,
// each landing on the lowest empty row. Empty when the board is full.
func Legal(s State) []Move {
	moves := make([]Move, 0, s.Board.Cols())
	for col := 0; col < s.Board.Cols(); col++ {
		for row := 0; row < s.Board.Rows(); row++ {
			if s.Board.At(row, col) == CellEmpty {
				moves = append(moves, Move{Row: row, Col: col})
				break
			}
		}
	}
	return moves
}

// Result scans the whole board. A realized four-in-a-row wins even on a
// full board; only a full board without one is a draw.
func Result(s State) Outcome {
	for _, player := range []Player{P1, P2} {
		if windowCount(s.Board, player, false) > 0 {
			return WinOutcome(player)
		}
	}
	if s.Board.Full() {
		return OutcomeDraw
	}
	return OutcomeNone
}
