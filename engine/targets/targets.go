/*
Package targets picks the mission cells of a puzzle: a bounded, seeded
sample of the board cells whose label matches a requested category.

Selection runs on its own sub-stream of the puzzle seed, so it never
interferes with maze carving or wall augmentation randomness.
*/
package targets

import (
	"sort"
	"strings"

	"github.com/aulamaze/aulamaze-api/engine/maze"
	"github.com/aulamaze/aulamaze-api/engine/rng"
)

// targetsStream is the discriminator appended to the base seed for the
// selection shuffle.
const targetsStream = "|targets"

// LabeledCell annotates a grid cell with its word and category. The engine
// treats the mapping Cell → LabeledCell as opaque read-only input built by
// the board content store; categories arrive pre-normalized but comparison
// lowercases again so a stray mixed-case label cannot slip through.
type LabeledCell struct {
	Cell     maze.Cell
	Word     string
	Category string
}

// Select returns up to count cells labeled with the given category,
// deterministically for identical inputs and seed.
//
// The matching cells are collected in canonical cell order (map iteration
// order is randomized in Go, so the pool must be re-ordered before any
// seeded step). When the pool is no larger than count the whole pool is
// returned in that order; otherwise the pool is shuffled on the seed's
// target stream and the first count cells win. A negative count is a caller
// bug and panics.
func Select(cells map[maze.Cell]LabeledCell, category string, count int, seed string) []maze.Cell {
	if count < 0 {
		panic("targets: count must not be negative")
	}

	want := strings.ToLower(category)
	pool := make([]maze.Cell, 0, len(cells))
	for cell, labeled := range cells {
		if strings.ToLower(labeled.Category) == want {
			pool = append(pool, cell)
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].Less(pool[j]) })

	if len(pool) <= count {
		return pool
	}
	return rng.Shuffle(pool, seed+targetsStream)[:count]
}
