package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/kropki/internal/domain"
	"svw.info/kropki/internal/ports"
)

func targetGivens(dim int, d domain.Difficulty) int {
	if dim == 6 {
		switch d {
		case domain.Easy:
			return 18
		case domain.Medium:
			return 14
		case domain.Hard:
			return 10
		default:
			return 8 // Expert
		}
	}
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution: fill a complete
// random grid, derive a dot set from it, then carve out givens while the
// puzzle stays uniquely solvable under those dots.
func (g *UniqueGenerator) Generate(ctx context.Context, dim int, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	full := &domain.Board{Dim: dim}
	if !fillRandom(ctx, rng, full) {
		return nil, ports.Stats{}, context.Canceled
	}

	// 2) dots consistent with the solution
	density := g.DotDensity
	if density == 0 {
		density = 0.4
	}
	dots := deriveDots(full, rng, density)

	// 3) carve out clues while preserving uniqueness
	puz := *full
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			puz.Fixed[r][c] = true
		}
	}
	cells := dim * dim
	positions := make([]int, cells)
	for i := 0; i < cells; i++ {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	target := targetGivens(dim, diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		if countGivens(&puz) <= target {
			break
		}
		r, c := pos/dim, pos%dim
		if puz.Values[r][c] == 0 {
			continue
		}
		old := puz.Values[r][c]
		puz.Values[r][c] = 0
		puz.Fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, &puz, dots)
		nodes += st.Nodes
		if !unique {
			// revert
			puz.Values[r][c] = old
			puz.Fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      puz,
		Dots:       dots,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func countGivens(b *domain.Board) int {
	n := 0
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// deriveDots places dots on adjacent pairs of the solved grid. Pairs in
// a 1:2 ratio get a black dot, consecutive pairs a white one; when both
// relations hold (1 and 2) black wins. Only a density fraction of the
// eligible pairs is kept.
func deriveDots(b *domain.Board, rng *rand.Rand, density float64) []domain.Dot {
	var dots []domain.Dot
	consider := func(r1, c1, r2, c2 int) {
		a, bb := b.Values[r1][c1], b.Values[r2][c2]
		var color domain.DotColor
		switch {
		case a == 2*bb || bb == 2*a:
			color = domain.Black
		case a+1 == bb || bb+1 == a:
			color = domain.White
		default:
			return
		}
		if rng.Float64() >= density {
			return
		}
		dots = append(dots, domain.Dot{
			A:     domain.CellCoord{Row: r1, Col: c1},
			B:     domain.CellCoord{Row: r2, Col: c2},
			Color: color,
		})
	}
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			if c+1 < b.Dim {
				consider(r, c, r, c+1)
			}
			if r+1 < b.Dim {
				consider(r, c, r+1, c)
			}
		}
	}
	return dots
}

// fillRandom solves an empty grid into a full valid solution by random
// value ordering. Dots are derived afterwards, so only the row/col/box
// rules constrain the fill.
func fillRandom(ctx context.Context, rng *rand.Rand, b *domain.Board) bool {
	dim := b.Dim
	nums := make([]uint8, dim)
	for i := 0; i < dim; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == dim {
			return true
		}
		nr, nc := r, c+1
		if nc == dim {
			nr, nc = r+1, 0
		}
		rng.Shuffle(dim, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := make([]uint8, dim)
		copy(order, nums)
		for _, v := range order {
			if allowed(b, r, c, v) {
				b.Values[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				b.Values[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors the row/col/box checks locally for the generator.
func allowed(b *domain.Board, r, c int, v uint8) bool {
	dim := b.Dim
	for i := 0; i < dim; i++ {
		if b.Values[r][i] == v || b.Values[i][c] == v {
			return false
		}
	}
	boxRows, boxCols := domain.BoxShape(dim)
	br, bc := (r/boxRows)*boxRows, (c/boxCols)*boxCols
	for dr := 0; dr < boxRows; dr++ {
		for dc := 0; dc < boxCols; dc++ {
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
