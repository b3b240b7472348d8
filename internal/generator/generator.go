package generator

import "svw.info/kropki/internal/ports"

// UniqueGenerator creates Kropki puzzles with a unique solution using a
// provided Solver for the uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
	// DotDensity is the fraction of eligible adjacent pairs that receive
	// a dot, in [0,1]. Zero means the default of 0.4.
	DotDensity float64
}

// NewUniqueGenerator wires a generator that uses the given solver.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
