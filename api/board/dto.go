// Package boardapi exposes board management and puzzle generation over HTTP.
package boardapi

import (
	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/aulamaze/aulamaze-api/engine/maze"
)

// CreateBoardRequest creates a board either from structured cells or from
// raw CSV content (row,col,word,category); exactly one of the two should be
// set. Zero dimensions default to the physical 6×6 classroom board.
type CreateBoardRequest struct {
	Name  string          `json:"name" binding:"required"`
	Rows  int             `json:"rows"`
	Cols  int             `json:"cols"`
	Cells []dmn.BoardCell `json:"cells"`
	CSV   string          `json:"csv"`
}

// PuzzleRequest asks for a deterministic puzzle over a board. Every string
// is a valid seed, including the empty one.
type PuzzleRequest struct {
	Seed           string `json:"seed"`
	ExtraWalls     int    `json:"extra_walls"`
	TargetCategory string `json:"target_category"`
	TargetCount    int    `json:"target_count"`
}

// BoardResponse describes a stored board.
type BoardResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Rows       int             `json:"rows"`
	Cols       int             `json:"cols"`
	Cells      []dmn.BoardCell `json:"cells"`
	Categories []string        `json:"categories"`
}

// PuzzleResponse carries the generated wall layout, in canonical edge
// order, and the chosen mission targets.
type PuzzleResponse struct {
	BoardID        string      `json:"board_id"`
	Seed           string      `json:"seed"`
	Rows           int         `json:"rows"`
	Cols           int         `json:"cols"`
	Walls          []maze.Edge `json:"walls"`
	WallsAdded     int         `json:"walls_added"`
	TargetCategory string      `json:"target_category"`
	Targets        []maze.Cell `json:"targets"`
}

func newBoardResponse(board *dmn.Board) *BoardResponse {
	return &BoardResponse{
		ID:         board.ID.String(),
		Name:       board.Name,
		Rows:       board.Rows,
		Cols:       board.Cols,
		Cells:      board.Cells,
		Categories: board.Categories(),
	}
}

func newPuzzleResponse(puzzle *dmn.Puzzle) *PuzzleResponse {
	return &PuzzleResponse{
		BoardID:        puzzle.BoardID.String(),
		Seed:           puzzle.Seed,
		Rows:           puzzle.Rows,
		Cols:           puzzle.Cols,
		Walls:          puzzle.Walls,
		WallsAdded:     puzzle.WallsAdded,
		TargetCategory: puzzle.TargetCategory,
		Targets:        puzzle.Targets,
	}
}
