package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/kropki/internal/csp"
	"svw.info/kropki/internal/domain"
	"svw.info/kropki/internal/ports"
)

// SATSolver encodes the puzzle into CNF and hands it to gini.
// One literal per (row, col, value) triple; each cell carries an
// at-least-one clause, each row/column/box group carries pairwise
// not-both clauses per value, givens become unit clauses, and each dot
// contributes one clause per incompatible value pair. Exactly-one per
// cell follows from at-least-one plus the group constraints.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type cnf struct {
	g   *gini.Gini
	dim int
}

func (c *cnf) lit(r, col int, v uint8) z.Lit {
	n := int(v-1) + col*c.dim + r*c.dim*c.dim
	return z.Var(n + 1).Pos()
}

// notBoth adds the clause (¬a ∨ ¬b).
func (c *cnf) notBoth(a, b z.Lit) {
	c.g.Add(a.Not())
	c.g.Add(b.Not())
	c.g.Add(0)
}

func encode(b *domain.Board, dots []domain.Dot) *cnf {
	dim := b.Dim
	c := &cnf{g: gini.New(), dim: dim}

	// every cell holds at least one value
	for r := 0; r < dim; r++ {
		for col := 0; col < dim; col++ {
			for v := uint8(1); v <= uint8(dim); v++ {
				c.g.Add(c.lit(r, col, v))
			}
			c.g.Add(0)
		}
	}

	// each value appears at most once per row and per column
	for v := uint8(1); v <= uint8(dim); v++ {
		for i := 0; i < dim; i++ {
			for a := 0; a < dim; a++ {
				for b2 := a + 1; b2 < dim; b2++ {
					c.notBoth(c.lit(i, a, v), c.lit(i, b2, v))
					c.notBoth(c.lit(a, i, v), c.lit(b2, i, v))
				}
			}
		}
	}

	// each value appears at most once per box
	boxRows, boxCols := domain.BoxShape(dim)
	for br := 0; br < dim; br += boxRows {
		for bc := 0; bc < dim; bc += boxCols {
			var cells []domain.CellCoord
			for dr := 0; dr < boxRows; dr++ {
				for dc := 0; dc < boxCols; dc++ {
					cells = append(cells, domain.CellCoord{Row: br + dr, Col: bc + dc})
				}
			}
			for v := uint8(1); v <= uint8(dim); v++ {
				for i := range cells {
					for j := i + 1; j < len(cells); j++ {
						c.notBoth(c.lit(cells[i].Row, cells[i].Col, v), c.lit(cells[j].Row, cells[j].Col, v))
					}
				}
			}
		}
	}

	// dots: forbid every incompatible value pair
	for _, d := range dots {
		for va := uint8(1); va <= uint8(dim); va++ {
			for vb := uint8(1); vb <= uint8(dim); vb++ {
				if !dotCompatible(d.Color, va, vb) {
					c.notBoth(c.lit(d.A.Row, d.A.Col, va), c.lit(d.B.Row, d.B.Col, vb))
				}
			}
		}
	}

	// givens as unit clauses
	for r := 0; r < dim; r++ {
		for col := 0; col < dim; col++ {
			if v := b.Values[r][col]; v != 0 {
				c.g.Add(c.lit(r, col, v))
				c.g.Add(0)
			}
		}
	}
	return c
}

func dotCompatible(color domain.DotColor, a, b uint8) bool {
	if color == domain.White {
		return a+1 == b || b+1 == a
	}
	return a == 2*b || b == 2*a
}

func (c *cnf) extract(b *domain.Board) *domain.Board {
	out := &domain.Board{Dim: c.dim, Fixed: b.Fixed}
	for r := 0; r < c.dim; r++ {
		for col := 0; col < c.dim; col++ {
			for v := uint8(1); v <= uint8(c.dim); v++ {
				if c.g.Value(c.lit(r, col, v)) {
					out.Values[r][col] = v
					break
				}
			}
		}
	}
	return out
}

// Solve encodes and solves the board. Unsatisfiable puzzles surface the
// same sentinel as the CSP backend so callers need not care which
// backend ran.
func (s *SATSolver) Solve(ctx context.Context, b *domain.Board, dots []domain.Dot) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	c := encode(b, dots)
	switch c.g.Solve() {
	case satisfiable:
		return c.extract(b), ports.Stats{Duration: time.Since(start)}, nil
	case unsatisfiable:
		return nil, ports.Stats{Duration: time.Since(start)}, csp.ErrUnsatisfiable
	}
	return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
}

// Unique solves once, blocks the found model with one clause, and solves
// again; the puzzle is unique iff the second call is unsatisfiable.
func (s *SATSolver) Unique(ctx context.Context, b *domain.Board, dots []domain.Dot) (bool, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{}, err
	}
	c := encode(b, dots)
	if c.g.Solve() != satisfiable {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	first := c.extract(b)
	for r := 0; r < c.dim; r++ {
		for col := 0; col < c.dim; col++ {
			c.g.Add(c.lit(r, col, first.Values[r][col]).Not())
		}
	}
	c.g.Add(0)
	unique := c.g.Solve() == unsatisfiable
	return unique, ports.Stats{Duration: time.Since(start)}, nil
}
