package i

import (
	"io"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/google/uuid"
)

// BoardManager manages the vocabulary boards owned by teacher accounts.
type BoardManager interface {
	// Create validates and stores a new board from pre-built cells.
	Create(ownerID uuid.UUID, name string, rows, cols int, cells []dmn.BoardCell) (*dmn.Board, error)

	// CreateFromCSV validates and stores a new board from row,col,word,category CSV input.
	CreateFromCSV(ownerID uuid.UUID, name string, rows, cols int, csv io.Reader) (*dmn.Board, error)

	// ByID retrieves a board, enforcing that it belongs to the owner.
	ByID(ownerID, boardID uuid.UUID) (*dmn.Board, error)

	// ByOwner lists every board owned by the given user.
	ByOwner(ownerID uuid.UUID) ([]*dmn.Board, error)

	// Delete removes a board, enforcing that it belongs to the owner.
	Delete(ownerID, boardID uuid.UUID) error
}
