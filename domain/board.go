/*
Package domain holds the aggregates of the word-maze service: teacher
accounts and the vocabulary boards they manage.

A Board is the content-store side of a puzzle: a rectangular grid of labeled
cells, each carrying a vocabulary word and a category. Boards validate their
content on construction, so the puzzle engine downstream can assume
well-formed input (in-bounds coordinates, no duplicates, normalized
categories).
*/
package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aulamaze/aulamaze-api/engine/maze"
	"github.com/aulamaze/aulamaze-api/engine/targets"
	"github.com/google/uuid"
)

const (
	// maxBoardDimension bounds board sizes; classroom boards are 6×6 but
	// the engine handles anything rectangular up to this limit.
	maxBoardDimension = 20

	// DefaultRows and DefaultCols match the physical classroom board.
	DefaultRows = 6
	DefaultCols = 6
)

var (
	ErrBoardNameEmpty        = errors.New("board name must not be empty")
	ErrInvalidBoardDimension = errors.New("board dimensions out of range")
)

// BoardCell is one labeled cell of a board: a grid position, the word shown
// there, and the word's category.
type BoardCell struct {
	Row      int    `bson:"row" json:"row"`
	Col      int    `bson:"col" json:"col"`
	Word     string `bson:"word" json:"word"`
	Category string `bson:"category" json:"category"`
}

// Board is a vocabulary board owned by a teacher account.
type Board struct {
	ID      uuid.UUID   `bson:"_id" json:"id"`
	OwnerID uuid.UUID   `bson:"ownerId" json:"ownerId"`
	Name    string      `bson:"name" json:"name"`
	Rows    int         `bson:"rows" json:"rows"`
	Cols    int         `bson:"cols" json:"cols"`
	Cells   []BoardCell `bson:"cells" json:"cells"`
}

// BoardConfig holds parameters for creating a Board.
type BoardConfig struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Rows    int
	Cols    int
	Cells   []BoardCell
}

// NewBoard creates a Board after validating its dimensions and cells.
// Cell categories are normalized to lowercase and leading/trailing space is
// trimmed from words and categories; malformed cells are rejected here so
// they never reach the puzzle engine.
func NewBoard(config BoardConfig) (*Board, error) {
	if strings.TrimSpace(config.Name) == "" {
		return nil, ErrBoardNameEmpty
	}
	if min(config.Rows, config.Cols) <= 0 || max(config.Rows, config.Cols) > maxBoardDimension {
		return nil, ErrInvalidBoardDimension
	}

	grid := maze.Grid{Rows: config.Rows, Cols: config.Cols}
	seen := make(map[maze.Cell]bool, len(config.Cells))
	cells := make([]BoardCell, 0, len(config.Cells))
	for _, c := range config.Cells {
		pos := maze.Cell{Row: c.Row, Col: c.Col}
		if !grid.Contains(pos) {
			return nil, fmt.Errorf("cell %s out of board bounds", pos)
		}
		if seen[pos] {
			return nil, fmt.Errorf("duplicate cell %s", pos)
		}
		seen[pos] = true

		word := strings.TrimSpace(c.Word)
		category := strings.ToLower(strings.TrimSpace(c.Category))
		if word == "" {
			return nil, fmt.Errorf("cell %s has an empty word", pos)
		}
		if category == "" {
			return nil, fmt.Errorf("cell %s has an empty category", pos)
		}
		cells = append(cells, BoardCell{Row: c.Row, Col: c.Col, Word: word, Category: category})
	}

	return &Board{
		ID:      config.ID,
		OwnerID: config.OwnerID,
		Name:    strings.TrimSpace(config.Name),
		Rows:    config.Rows,
		Cols:    config.Cols,
		Cells:   cells,
	}, nil
}

// Grid returns the board's grid topology.
func (b *Board) Grid() maze.Grid {
	return maze.Grid{Rows: b.Rows, Cols: b.Cols}
}

// LabeledCells converts the board content into the read-only mapping the
// target selector consumes.
func (b *Board) LabeledCells() map[maze.Cell]targets.LabeledCell {
	out := make(map[maze.Cell]targets.LabeledCell, len(b.Cells))
	for _, c := range b.Cells {
		cell := maze.Cell{Row: c.Row, Col: c.Col}
		out[cell] = targets.LabeledCell{Cell: cell, Word: c.Word, Category: c.Category}
	}
	return out
}

// Categories returns the distinct cell categories in first-seen order.
func (b *Board) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range b.Cells {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out
}
