package ports

import (
	"context"
	"time"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a grid and can test uniqueness. Solve does not mutate its
// input; "no solution" is reported as an error value, not a panic.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty level.
type Generator interface {
	Generate(ctx context.Context, seed int64, level int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter proposes a cell to reveal from the known solution.
type Hinter interface {
	Hint(ctx context.Context, current, solution domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves saved games.
type Storage interface {
	Save(ctx context.Context, sg *domain.SavedGame) error
	Load(ctx context.Context, id string) (*domain.SavedGame, error)
	List(ctx context.Context) ([]domain.GameMeta, error)
	Delete(ctx context.Context, id string) error
}
