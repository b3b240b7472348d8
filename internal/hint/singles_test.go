package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/kropki/internal/domain"
)

func TestHintNakedSingleInRow(t *testing.T) {
	b := &domain.Board{Dim: 9}
	for c := 0; c < 8; c++ {
		b.Values[0][c] = uint8(c + 1)
		b.Fixed[0][c] = true
	}
	h, ok, err := NewSingles().Hint(context.Background(), b, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []domain.CellCoord{{Row: 0, Col: 8}}, h.Cells)
	require.Equal(t, uint8(9), h.Value)
}

func TestHintDotDrivenSingle(t *testing.T) {
	// 2 under a white dot next to a cell whose row already rules out 1:
	// only 3 remains for the partner.
	b := &domain.Board{Dim: 6}
	b.Values[0][0] = 2
	b.Fixed[0][0] = true
	b.Values[0][2] = 1
	b.Fixed[0][2] = true
	dots := []domain.Dot{{
		A:     domain.CellCoord{Row: 0, Col: 0},
		B:     domain.CellCoord{Row: 0, Col: 1},
		Color: domain.White,
	}}
	h, ok, err := NewSingles().Hint(context.Background(), b, dots)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []domain.CellCoord{{Row: 0, Col: 1}}, h.Cells)
	require.Equal(t, uint8(3), h.Value)
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	_, ok, err := NewSingles().Hint(context.Background(), &domain.Board{Dim: 9}, nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHintNoneOnContradiction(t *testing.T) {
	b := &domain.Board{Dim: 9}
	b.Values[0][0] = 5
	b.Fixed[0][0] = true
	b.Values[0][1] = 5
	b.Fixed[0][1] = true
	_, ok, err := NewSingles().Hint(context.Background(), b, nil)
	require.NoError(t, err)
	require.False(t, ok)
}
