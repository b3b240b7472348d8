package ports

import (
	"context"
	"time"

	"svw.info/kropki/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes      int
	Backtracks int
	Prunes     int
	Duration   time.Duration
}

// Solver solves a Kropki board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board, dots []domain.Dot) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board, dots []domain.Dot) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, dim int, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box/dots).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board, dots []domain.Dot) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step, if one can be found.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, dots []domain.Dot) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
