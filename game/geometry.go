package game

// Coord addresses a single board cell.
type Coord struct {
	Row int
	Col int
}

// Ray is the list of cells walking outward from a pivot cell in one
// direction, nearest cell first. Rays are truncated at the board edge and
// never longer than winLen-1: cells further out cannot share a window with
// the pivot.
type Ray []Coord

// Axis pairs the two opposite rays of one alignment direction.
type Axis struct {
	Pos Ray
	Neg Ray
}

// Geometry precomputes, for every cell, the four axis-pairs of rays used
// for O(ray-length) win and open-line scanning. It is built once per board
// size, is read-only afterwards, and is safe to share between any number
// of concurrent searches.
type Geometry struct {
	rows int
	cols int
	axes [][4]Axis
}

func NewGeometry(rows, cols int) *Geometry {
	g := &Geometry{
		rows: rows,
		cols: cols,
		axes: make([][4]Axis, rows*cols),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			var axes [4]Axis
			for i, dir := range axisDirs {
				axes[i] = Axis{
					Pos: g.buildRay(row, col, dir[0], dir[1]),
					Neg: g.buildRay(row, col, -dir[0], -dir[1]),
				}
			}
			g.axes[row*cols+col] = axes
		}
	}
	return g
}

func (g *Geometry) Rows() int {
	return g.rows
}

func (g *Geometry) Cols() int {
	return g.cols
}

// Axes returns the four precomputed axis-pairs anchored at the given cell.
func (g *Geometry) Axes(row, col int) *[4]Axis {
	return &g.axes[row*g.cols+col]
}

func (g *Geometry) buildRay(row, col, dRow, dCol int) Ray {
	ray := make(Ray, 0, winLen-1)
	for step := 1; step < winLen; step++ {
		r := row + step*dRow
		c := col + step*dCol
		if r < 0 || c < 0 || r >= g.rows || c >= g.cols {
			break
		}
		ray = append(ray, Coord{Row: r, Col: c})
	}
	return ray
}
