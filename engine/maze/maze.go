/*
Package maze generates the hidden wall layout of a rectangular grid maze.

Generate carves a perfect maze (the open passages form a spanning tree: every
cell reachable, no cycles) with a seeded randomized depth-first walk.
AddExtraWalls then closes additional passages to raise difficulty while
keeping the whole grid a single connected component. Both operations are pure
functions of the grid and the textual seed: the same inputs always produce
the same wall set.

Walls and passages are represented as canonical edge sets rather than
per-cell wall flags, so layouts can be compared, cached, and serialized by
value regardless of the order edges were discovered in.
*/
package maze

import (
	"strings"

	"github.com/aulamaze/aulamaze-api/engine/rng"
)

// wallsStream is the discriminator appended to the base seed for the
// augmentation shuffle, keeping it independent from the carving stream.
const wallsStream = "|walls"

// Generate builds a perfect maze over the grid and returns its walls.
//
// The carve is an iterative randomized depth-first walk (the "recursive
// backtracker") rooted at the origin: while the stack is non-empty, the top
// cell picks an unvisited neighbor through the seeded generator and the edge
// toward it is opened; with no unvisited neighbors the walk backtracks. The
// carved passages form a spanning tree of the grid graph, so the returned
// wall set is AllEdges minus exactly Rows·Cols−1 passage edges.
func Generate(g Grid, seed string) *EdgeSet {
	carved := NewEdgeSet()
	visited := make(map[Cell]bool, g.Cells())
	src := rng.ForSeed(seed)

	stack := []Cell{g.Origin()}
	visited[g.Origin()] = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		unvisited := make([]Cell, 0, 4)
		for _, n := range g.Neighbors(current) {
			if !visited[n] {
				unvisited = append(unvisited, n)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[src.Intn(len(unvisited))]
		carved.Add(NewEdge(current, next))
		visited[next] = true
		stack = append(stack, next)
	}

	walls := NewEdgeSet()
	for _, e := range g.AllEdges().Sorted() {
		if !carved.Has(e) {
			walls.Add(e)
		}
	}
	return walls
}

// AddExtraWalls closes up to extra additional passages of the maze, keeping
// the passage graph connected. Candidates are the current passages shuffled
// under the seed's wall-augmentation stream; each one is closed only if the
// grid remains a single component afterwards, checked with a full
// reachability traversal. At the fixed classroom grid size that per-candidate
// check is trivially cheap; much larger grids would want an incremental
// connectivity structure instead.
//
// The input set is not mutated. The returned count is the number of walls
// actually added, which may be less than extra when too few closable
// passages remain; that is expected, not an error. A negative extra is a
// caller bug and panics.
func AddExtraWalls(g Grid, walls *EdgeSet, extra int, seed string) (*EdgeSet, int) {
	if extra < 0 {
		panic("maze: extra wall count must not be negative")
	}

	result := walls.Clone()
	if extra == 0 {
		return result, 0
	}

	passages := make([]Edge, 0)
	for _, e := range g.AllEdges().Sorted() {
		if !walls.Has(e) {
			passages = append(passages, e)
		}
	}

	added := 0
	for _, candidate := range rng.Shuffle(passages, seed+wallsStream) {
		result.Add(candidate)
		if Connected(g, result) {
			added++
			if added == extra {
				break
			}
			continue
		}
		result.Remove(candidate)
	}
	return result, added
}

// Connected reports whether the passage graph of the wall set spans the
// whole grid: a breadth-first traversal from the origin over non-wall edges
// must reach every cell.
func Connected(g Grid, walls *EdgeSet) bool {
	visited := make(map[Cell]bool, g.Cells())
	queue := []Cell{g.Origin()}
	visited[g.Origin()] = true
	reached := 1

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(current) {
			if visited[n] || walls.Has(NewEdge(current, n)) {
				continue
			}
			visited[n] = true
			reached++
			queue = append(queue, n)
		}
	}
	return reached == g.Cells()
}

// Render draws the maze as ASCII art, one "+---+" bordered row per grid
// row, with internal walls taken from the wall set. Useful for eyeballing a
// generated layout in logs.
func Render(g Grid, walls *EdgeSet) string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.Cols) + "\n")
	for row := 0; row < g.Rows; row++ {
		b.WriteString("|")
		for col := 0; col < g.Cols; col++ {
			b.WriteString("   ")
			c := Cell{Row: row, Col: col}
			east := Cell{Row: row, Col: col + 1}
			if col == g.Cols-1 || walls.Has(NewEdge(c, east)) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < g.Cols; col++ {
			c := Cell{Row: row, Col: col}
			south := Cell{Row: row + 1, Col: col}
			if row == g.Rows-1 || walls.Has(NewEdge(c, south)) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
