package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/aulamaze/aulamaze-api/engine/maze"
	"github.com/aulamaze/aulamaze-api/engine/targets"
	"github.com/aulamaze/aulamaze-api/service/i"
	"github.com/google/uuid"
)

// maxExtraWalls caps how many extra walls a request may ask for. The engine
// itself only stops at connectivity, so the cap lives here at the request
// boundary.
const maxExtraWalls = 60

var (
	ErrNegativeTargetCount = errors.New("target count must not be negative")
	ErrNegativeExtraWalls  = errors.New("extra wall count must not be negative")
)

// Puzzle turns boards into playable puzzles. It runs the engine in the
// fixed order maze → augment → targets and memoizes results through the
// cache, keyed by board and spec, since generation is deterministic.
type Puzzle struct {
	boards i.BoardManager
	cache  i.PuzzleCache
	logger *log.Logger
}

// NewPuzzle creates a Puzzle service.
func NewPuzzle(boards i.BoardManager, cache i.PuzzleCache, logger *log.Logger) *Puzzle {
	return &Puzzle{
		boards: boards,
		cache:  cache,
		logger: logger,
	}
}

// Generate returns the puzzle for the given board and spec, computing it on
// cache miss. Extra walls are clamped to [0, maxExtraWalls]; a negative
// count is rejected as a bad request rather than clamped, as is a negative
// target count.
func (p *Puzzle) Generate(ctx context.Context, ownerID, boardID uuid.UUID, spec dmn.PuzzleSpec) (*dmn.Puzzle, error) {
	if spec.ExtraWalls < 0 {
		return nil, ErrNegativeExtraWalls
	}
	if spec.TargetCount < 0 {
		return nil, ErrNegativeTargetCount
	}
	if spec.ExtraWalls > maxExtraWalls {
		spec.ExtraWalls = maxExtraWalls
	}

	board, err := p.boards.ByID(ownerID, boardID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(boardID, spec)
	return p.cache.GetOrCompute(ctx, key, func() (*dmn.Puzzle, error) {
		return p.compute(board, spec)
	})
}

// compute runs the engine for one board and spec.
func (p *Puzzle) compute(board *dmn.Board, spec dmn.PuzzleSpec) (*dmn.Puzzle, error) {
	grid := board.Grid()

	walls := maze.Generate(grid, spec.Seed)
	walls, added := maze.AddExtraWalls(grid, walls, spec.ExtraWalls, spec.Seed)
	if !maze.Connected(grid, walls) {
		return nil, fmt.Errorf("generated layout for board %s is disconnected", board.ID)
	}

	chosen := targets.Select(board.LabeledCells(), spec.TargetCategory, spec.TargetCount, spec.Seed)

	p.logger.Printf("generated puzzle for board %s: seed=%q walls=%d (+%d extra) targets=%d",
		board.ID, spec.Seed, walls.Len(), added, len(chosen))

	return &dmn.Puzzle{
		BoardID:        board.ID,
		Seed:           spec.Seed,
		Rows:           board.Rows,
		Cols:           board.Cols,
		Walls:          walls.Sorted(),
		WallsAdded:     added,
		TargetCategory: spec.TargetCategory,
		Targets:        chosen,
	}, nil
}

// cacheKey builds an unambiguous cache key for a board and spec. The quoted
// verbs keep free-form seed and category strings from colliding with the
// separator.
func cacheKey(boardID uuid.UUID, spec dmn.PuzzleSpec) string {
	return fmt.Sprintf("puzzle:%s:%q:%d:%q:%d",
		boardID, spec.Seed, spec.ExtraWalls, spec.TargetCategory, spec.TargetCount)
}
