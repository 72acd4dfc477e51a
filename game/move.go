package game

// Move places the mover's disc at a target cell. Legal derives Row as the
// lowest empty row of the column; Play re-validates both coordinates.
type Move struct {
	Row int
	Col int
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}
