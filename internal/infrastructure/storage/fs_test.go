package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/kropki/internal/domain"
)

func testPuzzle(id string, diff domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Seed:       42,
		Difficulty: diff,
		Board:      domain.Board{Dim: 6},
		Dots: []domain.Dot{{
			A:     domain.CellCoord{Row: 0, Col: 0},
			B:     domain.CellCoord{Row: 0, Col: 1},
			Color: domain.White,
		}},
		CreatedAt: 1700000000,
	}
	p.Board.Values[0][0] = 3
	p.Board.Fixed[0][0] = true
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	in := testPuzzle("p1", domain.Hard)
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, in.Board, out.Board)
	require.Equal(t, in.Dots, out.Dots)
	require.Equal(t, domain.Hard, out.Difficulty)
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	require.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	require.Error(t, s.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, testPuzzle("a", domain.Easy)))
	require.NoError(t, s.Save(ctx, testPuzzle("b", domain.Expert)))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	ids := []string{metas[0].ID, metas[1].ID}
	require.ElementsMatch(t, []string{"a", "b"}, ids)
}
