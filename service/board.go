package service

import (
	"errors"
	"io"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/aulamaze/aulamaze-api/service/i"
	"github.com/google/uuid"
)

// ErrBoardNotFound is returned when a board does not exist or belongs to a
// different owner; the two cases are deliberately indistinguishable.
var ErrBoardNotFound = errors.New("board not found")

// Board manages vocabulary boards on behalf of their owning teachers.
type Board struct {
	repo i.BoardRepo
}

// NewBoard creates a Board service over the given repository.
func NewBoard(repo i.BoardRepo) *Board {
	return &Board{repo: repo}
}

// Create validates and stores a new board from pre-built cells.
func (b *Board) Create(ownerID uuid.UUID, name string, rows, cols int, cells []dmn.BoardCell) (*dmn.Board, error) {
	board, err := dmn.NewBoard(dmn.BoardConfig{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Rows:    rows,
		Cols:    cols,
		Cells:   cells,
	})
	if err != nil {
		return nil, err
	}

	if err := b.repo.Save(board); err != nil {
		return nil, err
	}
	return board, nil
}

// CreateFromCSV parses row,col,word,category CSV content and stores the
// resulting board.
func (b *Board) CreateFromCSV(ownerID uuid.UUID, name string, rows, cols int, csv io.Reader) (*dmn.Board, error) {
	cells, err := dmn.ParseBoardCSV(csv)
	if err != nil {
		return nil, err
	}
	return b.Create(ownerID, name, rows, cols, cells)
}

// ByID retrieves a board, enforcing ownership.
func (b *Board) ByID(ownerID, boardID uuid.UUID) (*dmn.Board, error) {
	board, err := b.repo.ByID(boardID)
	if err != nil {
		return nil, ErrBoardNotFound
	}
	if board.OwnerID != ownerID {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

// ByOwner lists every board owned by the given user.
func (b *Board) ByOwner(ownerID uuid.UUID) ([]*dmn.Board, error) {
	return b.repo.ByOwner(ownerID)
}

// Delete removes a board, enforcing ownership.
func (b *Board) Delete(ownerID, boardID uuid.UUID) error {
	if _, err := b.ByID(ownerID, boardID); err != nil {
		return err
	}
	return b.repo.Delete(boardID)
}
