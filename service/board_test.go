package service

import (
	"strings"
	"testing"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryBoardRepo satisfies i.BoardRepo in memory.
type memoryBoardRepo struct {
	boards map[uuid.UUID]*dmn.Board
}

func newMemoryBoardRepo() *memoryBoardRepo {
	return &memoryBoardRepo{boards: make(map[uuid.UUID]*dmn.Board)}
}

func (r *memoryBoardRepo) Save(board *dmn.Board) error {
	r.boards[board.ID] = board
	return nil
}

func (r *memoryBoardRepo) ByID(id uuid.UUID) (*dmn.Board, error) {
	board, ok := r.boards[id]
	if !ok {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

func (r *memoryBoardRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.Board, error) {
	var out []*dmn.Board
	for _, b := range r.boards {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryBoardRepo) Delete(id uuid.UUID) error {
	if _, ok := r.boards[id]; !ok {
		return ErrBoardNotFound
	}
	delete(r.boards, id)
	return nil
}

func TestBoardService(t *testing.T) {
	ownerID := uuid.New()
	cells := []dmn.BoardCell{{Row: 0, Col: 0, Word: "gato", Category: "sustantivo"}}

	t.Run("Create persists a validated board", func(t *testing.T) {
		svc := NewBoard(newMemoryBoardRepo())
		board, err := svc.Create(ownerID, "Unidad 3", 6, 6, cells)
		require.NoError(t, err)

		got, err := svc.ByID(ownerID, board.ID)
		require.NoError(t, err)
		assert.Equal(t, board, got)
	})

	t.Run("Create rejects invalid boards before saving", func(t *testing.T) {
		repo := newMemoryBoardRepo()
		svc := NewBoard(repo)
		_, err := svc.Create(ownerID, "", 6, 6, cells)
		assert.Error(t, err)
		assert.Empty(t, repo.boards)
	})

	t.Run("CreateFromCSV parses and stores", func(t *testing.T) {
		svc := NewBoard(newMemoryBoardRepo())
		input := "row,col,word,category\n0,0,gato,Sustantivo\n1,1,correr,verbo\n"
		board, err := svc.CreateFromCSV(ownerID, "Desde CSV", 6, 6, strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, board.Cells, 2)
		assert.Equal(t, "sustantivo", board.Cells[0].Category)
	})

	t.Run("Ownership enforced on read and delete", func(t *testing.T) {
		svc := NewBoard(newMemoryBoardRepo())
		board, err := svc.Create(ownerID, "Unidad 3", 6, 6, cells)
		require.NoError(t, err)

		stranger := uuid.New()
		_, err = svc.ByID(stranger, board.ID)
		assert.ErrorIs(t, err, ErrBoardNotFound)
		assert.ErrorIs(t, svc.Delete(stranger, board.ID), ErrBoardNotFound)

		require.NoError(t, svc.Delete(ownerID, board.ID))
		_, err = svc.ByID(ownerID, board.ID)
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}
