package board

import "fmt"

// Fixed layout of the standard game.
const (
	Rows      = 10
	Cols      = 10
	MineCount = 10
)

// Geometry describes a rectangular board whose cells are addressed by a
// linear index: row = index / Cols, column = index % Cols.
type Geometry struct {
	Rows int
	Cols int
}

// Standard is the 10x10 layout every game is played on.
var Standard = Geometry{Rows: Rows, Cols: Cols}

// Len returns the number of cells.
func (g Geometry) Len() int {
	return g.Rows * g.Cols
}

func (g Geometry) Row(i int) int {
	return i / g.Cols
}

func (g Geometry) Col(i int) int {
	return i % g.Cols
}

// Index converts a row/column pair back to a linear index.
func (g Geometry) Index(row, col int) int {
	return row*g.Cols + col
}

// Contains reports whether i addresses a cell.
func (g Geometry) Contains(i int) bool {
	return i >= 0 && i < g.Len()
}

// MustContain panics if i does not address a cell. Callers only ever pass
// indices they derived from the board, so a miss is a programming error.
func (g Geometry) MustContain(i int) {
	if !g.Contains(i) {
		panic(fmt.Sprintf("board: index %d out of range [0, %d)", i, g.Len()))
	}
}

// Neighbors returns the indices surrounding i, in top-left, top, top-right,
// left, right, bottom-left, bottom, bottom-right order. Candidates that
// would wrap across a row edge or leave the board are dropped, so a corner
// has 3 neighbors, an edge cell 5 and an interior cell 8.
func (g Geometry) Neighbors(i int) []int {
	g.MustContain(i)

	firstRow := i < g.Cols
	lastRow := i >= g.Len()-g.Cols
	firstCol := i%g.Cols == 0
	lastCol := i%g.Cols == g.Cols-1

	out := make([]int, 0, 8)
	if !firstRow {
		if !firstCol {
			out = append(out, i-g.Cols-1)
		}
		out = append(out, i-g.Cols)
		if !lastCol {
			out = append(out, i-g.Cols+1)
		}
	}
	if !firstCol {
		out = append(out, i-1)
	}
	if !lastCol {
		out = append(out, i+1)
	}
	if !lastRow {
		if !firstCol {
			out = append(out, i+g.Cols-1)
		}
		out = append(out, i+g.Cols)
		if !lastCol {
			out = append(out, i+g.Cols+1)
		}
	}
	return out
}

// SafeZone returns i followed by its neighbors: the cells that may never
// hold a mine when i is the first cell opened.
func (g Geometry) SafeZone(i int) []int {
	return append([]int{i}, g.Neighbors(i)...)
}
