package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	g := NewGrid(6, 6)

	t.Run("AllEdges counts every internal adjacency", func(t *testing.T) {
		// R·(C−1) + (R−1)·C = 30 + 30 for a 6×6 grid.
		assert.Equal(t, 60, g.AllEdges().Len())
	})

	t.Run("Neighbors respects bounds and fixed order", func(t *testing.T) {
		assert.Equal(t, []Cell{{1, 0}, {0, 1}}, g.Neighbors(Cell{0, 0}), "corner keeps down then right from the up,down,left,right order")
		assert.Len(t, g.Neighbors(Cell{0, 3}), 3)
		assert.Equal(t, []Cell{{1, 3}, {3, 3}, {2, 2}, {2, 4}}, g.Neighbors(Cell{2, 3}))
	})

	t.Run("Invalid dimensions panic", func(t *testing.T) {
		assert.Panics(t, func() { NewGrid(0, 6) })
		assert.Panics(t, func() { NewGrid(6, -1) })
	})
}

func TestEdgeCanonicalization(t *testing.T) {
	a := Cell{Row: 2, Col: 3}
	b := Cell{Row: 2, Col: 4}

	t.Run("Discovery order does not matter", func(t *testing.T) {
		assert.Equal(t, NewEdge(a, b), NewEdge(b, a))
	})

	t.Run("Smaller endpoint comes first", func(t *testing.T) {
		e := NewEdge(b, a)
		assert.Equal(t, a, e.A)
		assert.Equal(t, b, e.B)
	})

	t.Run("Set membership is structural", func(t *testing.T) {
		set := NewEdgeSet()
		set.Add(NewEdge(a, b))
		assert.True(t, set.Has(NewEdge(b, a)))
	})
}

func TestGenerate(t *testing.T) {
	g := NewGrid(6, 6)

	t.Run("Same seed reproduces the identical wall set", func(t *testing.T) {
		first := Generate(g, "aula1")
		second := Generate(g, "aula1")
		assert.Equal(t, first.Sorted(), second.Sorted())
	})

	t.Run("Walls complement a spanning tree", func(t *testing.T) {
		walls := Generate(g, "aula1")
		// 60 internal edges minus a 35-edge spanning tree leaves 25 walls.
		assert.Equal(t, 25, walls.Len())
		assert.True(t, Connected(g, walls))
	})

	t.Run("Spanning tree holds across seeds", func(t *testing.T) {
		for _, seed := range []string{"", "aula1", "profesora", "6x6", "práctica"} {
			walls := Generate(g, seed)
			assert.Equal(t, g.AllEdges().Len()-(g.Cells()-1), walls.Len(), "seed %q", seed)
			assert.True(t, Connected(g, walls), "seed %q", seed)
		}
	})

	t.Run("Trivial single-cell grid", func(t *testing.T) {
		tiny := NewGrid(1, 1)
		walls := Generate(tiny, "aula1")
		assert.Equal(t, 0, walls.Len())
		assert.True(t, Connected(tiny, walls))
	})

	t.Run("Works for non-square grids", func(t *testing.T) {
		rect := NewGrid(3, 8)
		walls := Generate(rect, "aula1")
		assert.Equal(t, rect.AllEdges().Len()-(rect.Cells()-1), walls.Len())
		assert.True(t, Connected(rect, walls))
	})
}

func TestAddExtraWalls(t *testing.T) {
	g := NewGrid(6, 6)
	walls := Generate(g, "aula1")

	t.Run("Preserves connectivity", func(t *testing.T) {
		augmented, added := AddExtraWalls(g, walls, 10, "aula1")
		assert.LessOrEqual(t, added, 10)
		assert.True(t, Connected(g, augmented))
	})

	t.Run("Never removes an existing wall", func(t *testing.T) {
		augmented, added := AddExtraWalls(g, walls, 10, "aula1")
		assert.True(t, augmented.Contains(walls))
		assert.Equal(t, walls.Len()+added, augmented.Len())
	})

	t.Run("Reproducible for the same seed and input", func(t *testing.T) {
		first, addedFirst := AddExtraWalls(g, walls, 10, "aula1")
		second, addedSecond := AddExtraWalls(g, walls, 10, "aula1")
		assert.Equal(t, addedFirst, addedSecond)
		assert.Equal(t, first.Sorted(), second.Sorted())
	})

	t.Run("Does not mutate the input set", func(t *testing.T) {
		before := walls.Len()
		_, _ = AddExtraWalls(g, walls, 10, "aula1")
		assert.Equal(t, before, walls.Len())
	})

	t.Run("Zero extra is a no-op", func(t *testing.T) {
		augmented, added := AddExtraWalls(g, walls, 0, "aula1")
		assert.Equal(t, 0, added)
		assert.Equal(t, walls.Sorted(), augmented.Sorted())
	})

	t.Run("Caps additions when candidates run out", func(t *testing.T) {
		// A fresh spanning tree has zero closable passages: closing any
		// tree edge disconnects the grid.
		_, added := AddExtraWalls(g, walls, 100, "aula1")
		assert.Equal(t, 0, added)

		// An entirely open grid has plenty of closable cycles.
		open := NewEdgeSet()
		_, addedOpen := AddExtraWalls(g, open, 100, "aula1")
		assert.Greater(t, addedOpen, 0)
		assert.LessOrEqual(t, addedOpen, g.AllEdges().Len())
	})

	t.Run("Negative extra panics", func(t *testing.T) {
		assert.Panics(t, func() { AddExtraWalls(g, walls, -1, "aula1") })
	})
}

func TestConnected(t *testing.T) {
	g := NewGrid(6, 6)

	t.Run("Open grid is connected", func(t *testing.T) {
		assert.True(t, Connected(g, NewEdgeSet()))
	})

	t.Run("Fully walled grid is not", func(t *testing.T) {
		assert.False(t, Connected(g, g.AllEdges()))
	})

	t.Run("Sealing off one cell disconnects", func(t *testing.T) {
		walls := NewEdgeSet()
		corner := Cell{Row: 0, Col: 0}
		for _, n := range g.Neighbors(corner) {
			walls.Add(NewEdge(corner, n))
		}
		assert.False(t, Connected(g, walls))
	})
}

func TestRender(t *testing.T) {
	g := NewGrid(2, 2)
	walls := NewEdgeSet()
	walls.Add(NewEdge(Cell{0, 0}, Cell{0, 1}))

	out := Render(g, walls)
	require.NotEmpty(t, out)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Border row, then alternating cell and wall rows: 2·rows+1 lines.
	assert.Len(t, lines, 5)
	assert.Equal(t, "+---+---+", lines[0])
	assert.Equal(t, "|   |   |", lines[1], "internal east wall between the top cells")
}
