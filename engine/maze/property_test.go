package maze

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestMazeInvariants uses property-based testing to verify the engine's
// invariants over arbitrary seeds. These must hold for every seed string,
// not just the ones the unit tests pin down.
func TestMazeInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	g := NewGrid(6, 6)

	properties.Property("generation is deterministic per seed", prop.ForAll(
		func(seed string) bool {
			first := Generate(g, seed)
			second := Generate(g, seed)
			if first.Len() != second.Len() {
				return false
			}
			return first.Contains(second)
		},
		gen.AnyString(),
	))

	properties.Property("walls complement a spanning tree", prop.ForAll(
		func(seed string) bool {
			walls := Generate(g, seed)
			wantWalls := g.AllEdges().Len() - (g.Cells() - 1)
			return walls.Len() == wantWalls && Connected(g, walls)
		},
		gen.AnyString(),
	))

	properties.Property("augmentation preserves connectivity and monotonic growth", prop.ForAll(
		func(seed string, extra uint8) bool {
			walls := Generate(g, seed)
			augmented, added := AddExtraWalls(g, walls, int(extra), seed)
			if !Connected(g, augmented) {
				return false
			}
			if !augmented.Contains(walls) {
				return false
			}
			return added <= int(extra) && augmented.Len() == walls.Len()+added
		},
		gen.AnyString(),
		gen.UInt8(),
	))

	properties.Property("augmentation from an open grid stays connected", prop.ForAll(
		func(seed string, extra uint8) bool {
			augmented, added := AddExtraWalls(g, NewEdgeSet(), int(extra), seed)
			return Connected(g, augmented) && added <= int(extra)
		},
		gen.AnyString(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
