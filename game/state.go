package game

// Player identifies one of the two sides. P1 always moves first.
type Player int8

const (
	P1 Player = iota + 1
	P2
)

func (p Player) Other() Player {
	if p == P1 {
		return P2
	}
	return P1
}

func (p Player) String() string {
	if p == P1 {
		return "P1"
	}
	return "P2"
}

// Outcome is the result of a finished game. OutcomeNone means the game is
// still undecided.
type Outcome int8

const (
	OutcomeNone Outcome = iota
	OutcomeWinP1
	OutcomeWinP2
	OutcomeDraw
)

func WinOutcome(player Player) Outcome {
	if player == P1 {
		return OutcomeWinP1
	}
	return OutcomeWinP2
}

// Winner reports which player the outcome declares as winner, if any.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case OutcomeWinP1:
		return P1, true
	case OutcomeWinP2:
		return P2, true
	default:
		return P1, false
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeWinP1:
		return "P1 wins"
	case OutcomeWinP2:
		return "P2 wins"
	case OutcomeDraw:
		return "Draw"
	default:
		return "Undecided"
	}
}

// State is a full game position. It is only ever derived, never mutated:
// Play returns a fresh State and leaves its input untouched.
type State struct {
	Board Board
	Turn  Player
}

func NewState(rows, cols int) State {
	return State{
		Board: NewBoard(rows, cols),
		Turn:  P1,
	}
}

// StateFromGrid builds a state from a top-down grid of 0 (empty), 1 and 2.
// The side to move is derived from the disc counts. Intended for tests and
// tooling; the grid is taken as-is and not checked against gravity.
func StateFromGrid(grid [][]int) State {
	rows := len(grid)
	cols := len(grid[0])
	board := NewBoard(rows, cols)
	p1Discs, p2Discs := 0, 0
	for i, gridRow := range grid {
		row := rows - 1 - i
		for col, value := range gridRow {
			switch value {
			case 1:
				board.set(row, col, CellP1)
				p1Discs++
			case 2:
				board.set(row, col, CellP2)
				p2Discs++
			}
		}
	}
	turn := P1
	if p1Discs > p2Discs {
		turn = P2
	}
	return State{Board: board, Turn: turn}
}

func (s State) Clone() State {
	return State{Board: s.Board.Clone(), Turn: s.Turn}
}

// Key is a structural identity for the position: two states share a key
// exactly when their board contents and side to move are equal.
func (s State) Key() string {
	raw := make([]byte, len(s.Board.cells)+1)
	for i, cell := range s.Board.cells {
		raw[i] = byte(cell)
	}
	raw[len(raw)-1] = byte(s.Turn)
	return string(raw)
}
