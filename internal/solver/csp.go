// Package solver provides the two solving backends: the CSP engine with
// pluggable propagation, and a CNF/SAT encoding solved by gini. Both
// implement ports.Solver and must agree on satisfiability.
package solver

import (
	"context"
	"time"

	"svw.info/kropki/internal/csp"
	"svw.info/kropki/internal/domain"
	"svw.info/kropki/internal/ports"
)

// CSPSolver drives the backtracking constraint engine. Propagator and
// Heuristics are the engine's only tunable knobs.
type CSPSolver struct {
	Propagator domain.Propagator
	Heuristics bool
}

// NewCSPSolver returns a solver using the given propagator, with MRV+LCV
// ordering when heuristics is true.
func NewCSPSolver(p domain.Propagator, heuristics bool) *CSPSolver {
	return &CSPSolver{Propagator: p, Heuristics: heuristics}
}

func (s *CSPSolver) options() csp.Options {
	return csp.Options{Propagator: s.Propagator, Heuristics: s.Heuristics}
}

// Solve returns the solved board, or csp.ErrUnsatisfiable when no
// assignment satisfies the constraints.
func (s *CSPSolver) Solve(ctx context.Context, b *domain.Board, dots []domain.Dot) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	out, st, err := csp.Solve(ctx, b, dots, s.options())
	stats := ports.Stats{
		Nodes:      st.Nodes,
		Backtracks: st.Backtracks,
		Prunes:     st.Prunes,
		Duration:   time.Since(start),
	}
	if err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

// Unique reports whether exactly one solution exists. The search stops
// as soon as a second solution is found.
func (s *CSPSolver) Unique(ctx context.Context, b *domain.Board, dots []domain.Dot) (bool, ports.Stats, error) {
	start := time.Now()
	n, st, err := csp.CountSolutions(ctx, b, dots, s.options(), 2)
	stats := ports.Stats{
		Nodes:      st.Nodes,
		Backtracks: st.Backtracks,
		Prunes:     st.Prunes,
		Duration:   time.Since(start),
	}
	if err != nil {
		return false, stats, err
	}
	return n == 1, stats, nil
}
