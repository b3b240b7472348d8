package csp

import (
	"context"
	"errors"

	"svw.info/kropki/internal/domain"
)

// ErrUnsatisfiable reports that the search exhausted every branch: no
// assignment satisfies all constraints. It is an expected outcome for a
// well-formed puzzle, not a fault.
var ErrUnsatisfiable = errors.New("puzzle is unsatisfiable")

// Options are the two externally tunable knobs of the engine.
type Options struct {
	Propagator domain.Propagator
	Heuristics bool // MRV + LCV when true, fixed row-major/ascending order when false
}

// Stats counts the work done by one search.
type Stats struct {
	Nodes      int // value trials
	Backtracks int // failed value trials undone via the trail
	Prunes     int // domain values removed by propagation
}

type searcher struct {
	store *Store
	opts  Options
	stats Stats
}

// Solve searches for an assignment of b consistent with the row, column,
// box, and dot constraints. It returns the solved board, the search
// stats, and ErrUnsatisfiable when no assignment exists. Cancellation of
// ctx is polled between value trials.
func Solve(ctx context.Context, b *domain.Board, dots []domain.Dot, opts Options) (*domain.Board, Stats, error) {
	g := NewGraph(b, dots)
	s := &searcher{store: NewStore(g, b), opts: opts}

	// Initial pass catches contradictions among the givens before any
	// search decision.
	if Propagate(s.store, opts.Propagator, NoVar) == Wipeout {
		return nil, s.stats, ErrUnsatisfiable
	}
	solved, err := s.run(ctx)
	s.stats.Prunes = s.store.pruned
	if err != nil {
		return nil, s.stats, err
	}
	if !solved {
		return nil, s.stats, ErrUnsatisfiable
	}
	return s.store.Grid(b), s.stats, nil
}

// run is one SEARCHING node. It reports whether the subtree below the
// current store state contains a solution.
func (s *searcher) run(ctx context.Context) (bool, error) {
	v, ok := nextVariable(s.store, s.opts.Heuristics)
	if !ok {
		// Every domain is a singleton. Values determined purely by
		// pruning were never propagated from, so verify before
		// declaring the node solved.
		return s.consistent(), nil
	}
	for _, x := range orderValues(s.store, v, s.opts.Heuristics) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		s.stats.Nodes++
		cp := s.store.Checkpoint()
		if !s.store.Assign(v, x) && Propagate(s.store, s.opts.Propagator, v) == Consistent {
			solved, err := s.run(ctx)
			if err != nil {
				return false, err
			}
			if solved {
				return true, nil
			}
		}
		s.store.Restore(cp)
		s.stats.Backtracks++
	}
	return false, nil
}

// consistent checks every constraint against the fully determined store.
func (s *searcher) consistent() bool {
	for ci := range s.store.graph.Cons {
		c := &s.store.graph.Cons[ci]
		if c.Kind == AllDiff {
			var seen mask
			for _, u := range c.Vars {
				x, _ := s.store.Determined(u)
				if seen.has(x) {
					return false
				}
				seen |= bitOf(x)
			}
			continue
		}
		a, _ := s.store.Determined(c.Vars[0])
		b, _ := s.store.Determined(c.Vars[1])
		if !dotRelated(c.Kind, a, b) {
			return false
		}
	}
	return true
}

// CountSolutions searches exhaustively and counts solutions up to limit.
// Uniqueness testing passes limit=2.
func CountSolutions(ctx context.Context, b *domain.Board, dots []domain.Dot, opts Options, limit int) (int, Stats, error) {
	g := NewGraph(b, dots)
	s := &searcher{store: NewStore(g, b), opts: opts}
	if Propagate(s.store, opts.Propagator, NoVar) == Wipeout {
		return 0, s.stats, nil
	}
	count := 0
	var walk func(context.Context) error
	walk = func(ctx context.Context) error {
		v, ok := nextVariable(s.store, s.opts.Heuristics)
		if !ok {
			if s.consistent() {
				count++
			}
			return nil
		}
		for _, x := range orderValues(s.store, v, s.opts.Heuristics) {
			if count >= limit {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			s.stats.Nodes++
			cp := s.store.Checkpoint()
			if !s.store.Assign(v, x) && Propagate(s.store, s.opts.Propagator, v) == Consistent {
				if err := walk(ctx); err != nil {
					return err
				}
			}
			s.store.Restore(cp)
			s.stats.Backtracks++
		}
		return nil
	}
	err := walk(ctx)
	s.stats.Prunes = s.store.pruned
	return count, s.stats, err
}
