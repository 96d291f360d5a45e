package maze

// Directions lists the four orthogonal neighbor offsets in the fixed order
// used by Neighbors: up, down, left, right.
var Directions = [4]Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid describes a rectangular maze grid. It is a pure data source: the
// cells and their adjacencies are fully determined by the dimensions.
type Grid struct {
	Rows int
	Cols int
}

// NewGrid returns a grid with the given dimensions. It panics when either
// dimension is not positive; that is a caller bug, not a runtime condition.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		panic("maze: grid dimensions must be positive")
	}
	return Grid{Rows: rows, Cols: cols}
}

// Contains reports whether the cell lies within the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Origin returns the top-left cell, the fixed root of every traversal.
func (g Grid) Origin() Cell {
	return Cell{Row: 0, Col: 0}
}

// Neighbors returns the in-bounds orthogonal neighbors of a cell in the
// order up, down, left, right. The order only matters in that it is fixed:
// callers that pick among neighbors do so through the seeded generator.
func (g Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// AllEdges returns the set of every internal edge of the grid: all
// horizontal and vertical adjacent-cell pairs, canonicalized. For an R×C
// grid that is R·(C−1) + (R−1)·C edges.
func (g Grid) AllEdges() *EdgeSet {
	set := NewEdgeSet()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := Cell{Row: row, Col: col}
			if col+1 < g.Cols {
				set.Add(NewEdge(c, Cell{Row: row, Col: col + 1}))
			}
			if row+1 < g.Rows {
				set.Add(NewEdge(c, Cell{Row: row + 1, Col: col}))
			}
		}
	}
	return set
}
