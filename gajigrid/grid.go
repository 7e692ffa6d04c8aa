package gajigrid

type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

func New(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows &&
		col >= 0 && col < g.cols
}

// At returns Inert for positions outside the grid.
func (g *Grid) At(row, col int) Cell {
	if !g.Contains(row, col) {
		return Inert
	}
	return g.cells[row*g.cols+col]
}

func (g *Grid) Value(row, col int) int {
	return g.At(row, col).Value()
}

func (g *Grid) Set(row, col int, cell Cell) bool {
	if !g.Contains(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = cell
	return true
}

// Row returns a copy of one row.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.rows {
		return nil
	}
	ret := make([]Cell, g.cols)
	copy(ret, g.cells[row*g.cols:(row+1)*g.cols])
	return ret
}
