package csp

import "svw.info/kropki/internal/domain"

// ConstraintKind tags the closed set of constraint shapes.
type ConstraintKind int

const (
	AllDiff  ConstraintKind = iota // row, column, or box group
	BlackDot                       // one value is exactly twice the other
	WhiteDot                       // values differ by exactly 1
)

// Constraint is a relation over a fixed set of variables. AllDiff
// constraints span a full row/column/box group; dot constraints span an
// adjacent pair.
type Constraint struct {
	Kind ConstraintKind
	Vars []VarID
}

// Graph is the immutable constraint topology of one puzzle: all
// variables, all constraints, and a per-variable index of the
// constraints touching it.
type Graph struct {
	Dim   int
	Vars  []Variable
	Cons  []Constraint
	byVar [][]int // constraint indices per variable
}

// NewGraph builds the constraint graph for a board and its dots.
// Construction is deterministic: one AllDiff per row, column, and box,
// then one dot constraint per dot, in input order.
func NewGraph(b *domain.Board, dots []domain.Dot) *Graph {
	dim := b.Dim
	g := &Graph{Dim: dim}
	g.Vars = make([]Variable, dim*dim)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			g.Vars[r*dim+c] = Variable{Row: r, Col: c, Fixed: b.Values[r][c] != 0}
		}
	}

	for r := 0; r < dim; r++ {
		vars := make([]VarID, dim)
		for c := 0; c < dim; c++ {
			vars[c] = g.VarAt(r, c)
		}
		g.Cons = append(g.Cons, Constraint{Kind: AllDiff, Vars: vars})
	}
	for c := 0; c < dim; c++ {
		vars := make([]VarID, dim)
		for r := 0; r < dim; r++ {
			vars[r] = g.VarAt(r, c)
		}
		g.Cons = append(g.Cons, Constraint{Kind: AllDiff, Vars: vars})
	}
	boxRows, boxCols := domain.BoxShape(dim)
	for br := 0; br < dim; br += boxRows {
		for bc := 0; bc < dim; bc += boxCols {
			vars := make([]VarID, 0, boxRows*boxCols)
			for dr := 0; dr < boxRows; dr++ {
				for dc := 0; dc < boxCols; dc++ {
					vars = append(vars, g.VarAt(br+dr, bc+dc))
				}
			}
			g.Cons = append(g.Cons, Constraint{Kind: AllDiff, Vars: vars})
		}
	}
	for _, d := range dots {
		kind := BlackDot
		if d.Color == domain.White {
			kind = WhiteDot
		}
		g.Cons = append(g.Cons, Constraint{
			Kind: kind,
			Vars: []VarID{g.VarAt(d.A.Row, d.A.Col), g.VarAt(d.B.Row, d.B.Col)},
		})
	}

	g.byVar = make([][]int, len(g.Vars))
	for ci, c := range g.Cons {
		for _, v := range c.Vars {
			g.byVar[v] = append(g.byVar[v], ci)
		}
	}
	return g
}

// VarAt returns the variable at board position (r, c).
func (g *Graph) VarAt(r, c int) VarID { return VarID(r*g.Dim + c) }

// Neighbors returns the indices of all constraints referencing v.
func (g *Graph) Neighbors(v VarID) []int { return g.byVar[v] }

// Scope returns the member variables of constraint ci.
func (g *Graph) Scope(ci int) []VarID { return g.Cons[ci].Vars }

// dotRelated reports whether the value pair (a, b) satisfies a dot
// relation. Dots are undirected, both orderings hold or fail together.
func dotRelated(kind ConstraintKind, a, b uint8) bool {
	if kind == WhiteDot {
		return a+1 == b || b+1 == a
	}
	return a == 2*b || b == 2*a
}
