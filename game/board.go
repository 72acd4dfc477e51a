package game

// Cell is the content of a single board position.
type Cell int8

const (
	CellEmpty Cell = iota
	CellP1
	CellP2
)

func (c Cell) String() string {
	switch c {
	case CellP1:
		return "P1"
	case CellP2:
		return "P2"
	default:
		return "Empty"
	}
}

// Board is a rows x cols grid. Row 0 is the bottom row, column 0 is the
// leftmost column, so gravity pulls discs toward row 0.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

func NewBoard(rows, cols int) Board {
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (b Board) Rows() int {
	return b.rows
}

func (b Board) Cols() int {
	return b.cols
}

func (b Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.rows && col < b.cols
}

func (b Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.At(row, col) == CellEmpty
}

func (b Board) Full() bool {
	for _, cell := range b.cells {
		if cell == CellEmpty {
			return false
		}
	}
	return true
}

func (b Board) CountDiscs() int {
	count := 0
	for _, cell := range b.cells {
		if cell != CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) Clone() Board {
	clone := Board{rows: b.rows, cols: b.cols}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b *Board) set(row, col int, value Cell) {
	b.cells[b.index(row, col)] = value
}

func (b Board) index(row, col int) int {
	return row*b.cols + col
}

func CellFromPlayer(player Player) Cell {
	if player == P1 {
		return CellP1
	}
	return CellP2
}
