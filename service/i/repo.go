package i

import (
	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for teacher-account persistence.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// BoardRepo defines the interface for vocabulary-board persistence.
type BoardRepo interface {
	// Save inserts or updates a board in the repository.
	Save(board *dmn.Board) error

	// ByID retrieves a board by its unique ID.
	ByID(id uuid.UUID) (*dmn.Board, error)

	// ByOwner retrieves every board owned by the given user.
	ByOwner(ownerID uuid.UUID) ([]*dmn.Board, error)

	// Delete removes the board with the given ID.
	Delete(id uuid.UUID) error
}
