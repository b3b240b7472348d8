package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/kropki/internal/csp"
	"svw.info/kropki/internal/domain"
	"svw.info/kropki/internal/ports"
	"svw.info/kropki/internal/validator"
)

// A classic, solvable 9x9 Sudoku (0 = empty) with a unique solution.
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func sampleBoard() *domain.Board {
	b := &domain.Board{Dim: 9, Values: sample}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
	return b
}

func backends() map[string]ports.Solver {
	return map[string]ports.Solver{
		"csp-fc":  NewCSPSolver(domain.ForwardChecking, true),
		"csp-gac": NewCSPSolver(domain.GAC, true),
		"sat":     NewSATSolver(),
	}
}

func TestBackendsSolveSampleUnder1s(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var first *domain.Board
	for name, s := range backends() {
		out, st, err := s.Solve(ctx, sampleBoard(), nil)
		require.NoError(t, err, "backend %s (nodes=%d dur=%v)", name, st.Nodes, st.Duration)
		ok, conf, err := validator.New().Validate(ctx, out, nil)
		require.NoError(t, err)
		require.True(t, ok, "backend %s produced conflicts %v", name, conf)
		if first == nil {
			first = out
		} else {
			// the sample has one solution, so the backends must agree
			require.Equal(t, first.Values, out.Values, "backend %s", name)
		}
	}
}

func TestBackendsAgreeOnUnsatisfiable(t *testing.T) {
	b := &domain.Board{Dim: 9}
	b.Values[2][0] = 4
	b.Fixed[2][0] = true
	b.Values[2][8] = 4
	b.Fixed[2][8] = true
	for name, s := range backends() {
		_, _, err := s.Solve(context.Background(), b, nil)
		require.ErrorIs(t, err, csp.ErrUnsatisfiable, "backend %s", name)
	}
}

func TestBackendsSolve6x6WithDots(t *testing.T) {
	dots := []domain.Dot{
		{A: domain.CellCoord{Row: 0, Col: 0}, B: domain.CellCoord{Row: 0, Col: 1}, Color: domain.White},
		{A: domain.CellCoord{Row: 2, Col: 2}, B: domain.CellCoord{Row: 3, Col: 2}, Color: domain.Black},
	}
	for name, s := range backends() {
		out, _, err := s.Solve(context.Background(), &domain.Board{Dim: 6}, dots)
		require.NoError(t, err, "backend %s", name)
		ok, conf, err := validator.New().Validate(context.Background(), out, dots)
		require.NoError(t, err)
		require.True(t, ok, "backend %s produced conflicts %v", name, conf)
	}
}

func TestBackendsAgreeOnUniqueness(t *testing.T) {
	for name, s := range backends() {
		unique, _, err := s.Unique(context.Background(), sampleBoard(), nil)
		require.NoError(t, err, "backend %s", name)
		require.True(t, unique, "backend %s", name)

		// an empty board is anything but unique
		unique, _, err = s.Unique(context.Background(), &domain.Board{Dim: 6}, nil)
		require.NoError(t, err, "backend %s", name)
		require.False(t, unique, "backend %s", name)
	}
}
