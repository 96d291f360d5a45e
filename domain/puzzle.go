package domain

import (
	"github.com/aulamaze/aulamaze-api/engine/maze"
	"github.com/google/uuid"
)

// PuzzleSpec captures one generation request for a board: the textual seed
// plus the difficulty and mission parameters. Identical specs against the
// same board always produce the same puzzle.
type PuzzleSpec struct {
	Seed           string `json:"seed"`
	ExtraWalls     int    `json:"extraWalls"`
	TargetCategory string `json:"targetCategory"`
	TargetCount    int    `json:"targetCount"`
}

// Puzzle is the engine's output for one spec: the hidden wall layout and
// the chosen mission targets. Walls are kept in canonical edge order so a
// puzzle serializes byte-for-byte identically across runs.
type Puzzle struct {
	BoardID        uuid.UUID   `json:"boardId"`
	Seed           string      `json:"seed"`
	Rows           int         `json:"rows"`
	Cols           int         `json:"cols"`
	Walls          []maze.Edge `json:"walls"`
	WallsAdded     int         `json:"wallsAdded"`
	TargetCategory string      `json:"targetCategory"`
	Targets        []maze.Cell `json:"targets"`
}
