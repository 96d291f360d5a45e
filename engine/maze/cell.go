package maze

import (
	"fmt"
	"sort"
)

// Cell identifies a grid cell by its integer coordinates. Cells are pure
// values: they are never created or destroyed, only referenced.
type Cell struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Less reports whether c orders before other, comparing rows first and
// columns second. This lexicographic order is the canonical cell order used
// everywhere a deterministic sequence must be derived from a set.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// String formats the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Edge is an unordered pair of adjacent cells in canonical form: A is always
// the lexicographically smaller endpoint. Two edges are equal iff their
// canonical forms match, so Edge values can be used directly as map keys.
type Edge struct {
	A Cell `json:"a"`
	B Cell `json:"b"`
}

// NewEdge returns the canonical edge between two cells, swapping the
// endpoints if needed so that A < B.
func NewEdge(a, b Cell) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Less orders edges by their canonical endpoints, A first then B.
func (e Edge) Less(other Edge) bool {
	if e.A != other.A {
		return e.A.Less(other.A)
	}
	return e.B.Less(other.B)
}

// String formats the edge as "row,col-row,col".
func (e Edge) String() string {
	return e.A.String() + "-" + e.B.String()
}

// EdgeSet is a set of canonical edges. Depending on context it holds walls
// (closed edges) or passages (open edges); over a fixed grid the two are
// complements of each other within Grid.AllEdges.
type EdgeSet struct {
	edges map[Edge]struct{}
}

// NewEdgeSet returns an empty edge set.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{edges: make(map[Edge]struct{})}
}

// Add inserts an edge into the set.
func (s *EdgeSet) Add(e Edge) {
	s.edges[e] = struct{}{}
}

// Remove deletes an edge from the set, if present.
func (s *EdgeSet) Remove(e Edge) {
	delete(s.edges, e)
}

// Has reports whether the set contains the edge.
func (s *EdgeSet) Has(e Edge) bool {
	_, ok := s.edges[e]
	return ok
}

// Len returns the number of edges in the set.
func (s *EdgeSet) Len() int {
	return len(s.edges)
}

// Clone returns an independent copy of the set.
func (s *EdgeSet) Clone() *EdgeSet {
	out := &EdgeSet{edges: make(map[Edge]struct{}, len(s.edges))}
	for e := range s.edges {
		out.edges[e] = struct{}{}
	}
	return out
}

// Sorted returns the edges in canonical lexicographic order. Go randomizes
// map iteration, so every consumer that feeds edges into a seeded shuffle or
// serializes them must start from this order to stay deterministic.
func (s *EdgeSet) Sorted() []Edge {
	out := make([]Edge, 0, len(s.edges))
	for e := range s.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Contains reports whether every edge of other is also in s.
func (s *EdgeSet) Contains(other *EdgeSet) bool {
	for e := range other.edges {
		if !s.Has(e) {
			return false
		}
	}
	return true
}
