package i

import (
	"context"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/google/uuid"
)

// PuzzleGenerator computes the hidden wall layout and mission targets for a
// board. Generation is deterministic: the same board and spec always yield
// the same puzzle.
type PuzzleGenerator interface {
	Generate(ctx context.Context, ownerID, boardID uuid.UUID, spec dmn.PuzzleSpec) (*dmn.Puzzle, error)
}

// PuzzleCache deduplicates puzzle computation across requests and replicas.
// GetOrCompute returns the cached puzzle for the key when present; otherwise
// it runs compute under a distributed lock, stores the result, and returns
// it. A cache that cannot be reached must degrade to calling compute rather
// than failing the request.
type PuzzleCache interface {
	GetOrCompute(ctx context.Context, key string, compute func() (*dmn.Puzzle, error)) (*dmn.Puzzle, error)
}
