package csp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/kropki/internal/domain"
)

func emptyBoard(dim int) *domain.Board {
	return &domain.Board{Dim: dim}
}

func TestStoreInitialDomains(t *testing.T) {
	b := emptyBoard(6)
	b.Values[2][3] = 4
	g := NewGraph(b, nil)
	s := NewStore(g, b)

	require.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, s.Remaining(g.VarAt(0, 0)))
	v, ok := s.Determined(g.VarAt(2, 3))
	require.True(t, ok)
	require.Equal(t, uint8(4), v)
}

func TestStorePruneAndRestore(t *testing.T) {
	b := emptyBoard(6)
	g := NewGraph(b, nil)
	s := NewStore(g, b)
	v := g.VarAt(0, 0)

	cp := s.Checkpoint()
	require.False(t, s.Prune(v, 3))
	require.False(t, s.Prune(v, 5))
	require.Equal(t, []uint8{1, 2, 4, 6}, s.Remaining(v))

	s.Restore(cp)
	require.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, s.Remaining(v))
}

func TestStoreRestoreImmediatelyIsNoop(t *testing.T) {
	b := emptyBoard(9)
	g := NewGraph(b, nil)
	s := NewStore(g, b)

	before := make([][]uint8, len(g.Vars))
	for i := range g.Vars {
		before[i] = s.Remaining(VarID(i))
	}
	s.Restore(s.Checkpoint())
	for i := range g.Vars {
		require.Equal(t, before[i], s.Remaining(VarID(i)))
	}
}

func TestStoreNestedCheckpoints(t *testing.T) {
	b := emptyBoard(6)
	g := NewGraph(b, nil)
	s := NewStore(g, b)
	v := g.VarAt(1, 1)

	outer := s.Checkpoint()
	s.Prune(v, 1)
	inner := s.Checkpoint()
	s.Prune(v, 2)
	s.Prune(v, 3)

	s.Restore(inner)
	require.Equal(t, []uint8{2, 3, 4, 5, 6}, s.Remaining(v))
	s.Restore(outer)
	require.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, s.Remaining(v))
}

func TestStoreAssign(t *testing.T) {
	b := emptyBoard(6)
	g := NewGraph(b, nil)
	s := NewStore(g, b)
	v := g.VarAt(3, 4)

	require.False(t, s.Assign(v, 2))
	val, ok := s.Determined(v)
	require.True(t, ok)
	require.Equal(t, uint8(2), val)
}

func TestStorePruneToWipeout(t *testing.T) {
	b := emptyBoard(6)
	g := NewGraph(b, nil)
	s := NewStore(g, b)
	v := g.VarAt(0, 0)

	for val := uint8(1); val <= 5; val++ {
		require.False(t, s.Prune(v, val))
	}
	require.True(t, s.Prune(v, 6), "removing the last value must report wipeout")
	require.Equal(t, 0, s.Size(v))
}
