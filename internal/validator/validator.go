package validator

import (
	"context"

	"svw.info/kropki/internal/domain"
)

// FastValidator checks a board (complete or partial) against the row,
// column, box, and dot constraints using bitmasks. Empty cells are
// skipped; a dot is only checked once both its cells hold values.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board, dots []domain.Dot) (bool, []domain.CellCoord, error) {
	dim := b.Dim
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < dim; r++ {
		m := 0
		for c := 0; c < dim; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < dim; c++ {
		m := 0
		for r := 0; r < dim; r++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	boxRows, boxCols := domain.BoxShape(dim)
	for br := 0; br < dim; br += boxRows {
		for bc := 0; bc < dim; bc += boxCols {
			m := 0
			for dr := 0; dr < boxRows; dr++ {
				for dc := 0; dc < boxCols; dc++ {
					r := br + dr
					c := bc + dc
					val := b.Values[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	// dots
	for _, d := range dots {
		a := b.Values[d.A.Row][d.A.Col]
		bb := b.Values[d.B.Row][d.B.Col]
		if a == 0 || bb == 0 {
			continue
		}
		ok := false
		if d.Color == domain.White {
			ok = a+1 == bb || bb+1 == a
		} else {
			ok = a == 2*bb || bb == 2*a
		}
		if !ok {
			conf = append(conf, d.A, d.B)
		}
	}
	return len(conf) == 0, conf, nil
}
