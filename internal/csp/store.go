package csp

import "svw.info/kropki/internal/domain"

// Store holds the current domain of every variable plus the trail of
// pruning events that makes all mutation reversible. Propagators append
// to the trail through Prune; only the search driver checkpoints and
// restores.
type Store struct {
	graph  *Graph
	doms   []mask
	trail  []trailEntry
	pruned int // monotonic count of prune events, survives Restore
}

type trailEntry struct {
	v     VarID
	value uint8
}

// Checkpoint marks a trail position; restoring to it undoes every prune
// recorded after it.
type Checkpoint int

// NewStore builds the initial domain store for a graph: fixed cells are
// singletons of their given value, every other cell holds 1..dim.
func NewStore(g *Graph, b *domain.Board) *Store {
	s := &Store{graph: g, doms: make([]mask, len(g.Vars))}
	full := fullMask(g.Dim)
	for i, v := range g.Vars {
		if v.Fixed {
			s.doms[i] = bitOf(b.Values[v.Row][v.Col])
		} else {
			s.doms[i] = full
		}
	}
	return s
}

// Remaining returns the candidate values of v in ascending order.
func (s *Store) Remaining(v VarID) []uint8 { return s.doms[v].values(s.graph.Dim) }

// Size returns the current domain size of v.
func (s *Store) Size(v VarID) int { return s.doms[v].size() }

// Has reports whether value is still admissible for v.
func (s *Store) Has(v VarID, value uint8) bool { return s.doms[v].has(value) }

// Determined reports whether v's domain is a singleton, and its value.
func (s *Store) Determined(v VarID) (uint8, bool) {
	if s.doms[v].size() != 1 {
		return 0, false
	}
	return s.doms[v].single(), true
}

// Prune removes value from v's domain if present and logs the event.
// It reports whether the domain is now empty (wipeout).
func (s *Store) Prune(v VarID, value uint8) bool {
	if !s.doms[v].has(value) {
		return s.doms[v] == 0
	}
	s.doms[v] &^= bitOf(value)
	s.trail = append(s.trail, trailEntry{v: v, value: value})
	s.pruned++
	return s.doms[v] == 0
}

// Assign commits v to value by pruning every other candidate. It reports
// wipeout, which only happens if value was not in v's domain.
func (s *Store) Assign(v VarID, value uint8) bool {
	for _, other := range s.doms[v].values(s.graph.Dim) {
		if other != value {
			s.Prune(v, other)
		}
	}
	return s.doms[v] == 0
}

// Checkpoint returns a marker for the current trail position.
func (s *Store) Checkpoint() Checkpoint { return Checkpoint(len(s.trail)) }

// Restore undoes every prune recorded after cp, newest first, restoring
// the exact prior domains. Restore(Checkpoint()) is a no-op.
func (s *Store) Restore(cp Checkpoint) {
	for i := len(s.trail) - 1; i >= int(cp); i-- {
		e := s.trail[i]
		s.doms[e.v] |= bitOf(e.value)
	}
	s.trail = s.trail[:cp]
}

// Solved reports whether every domain is a singleton.
func (s *Store) Solved() bool {
	for _, d := range s.doms {
		if d.size() != 1 {
			return false
		}
	}
	return true
}

// Grid extracts the fully determined board. Call only when Solved.
func (s *Store) Grid(b *domain.Board) *domain.Board {
	out := &domain.Board{Dim: s.graph.Dim, Fixed: b.Fixed}
	for i, v := range s.graph.Vars {
		out.Values[v.Row][v.Col] = s.doms[i].single()
	}
	return out
}
