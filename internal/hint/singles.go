package hint

import (
	"context"
	"fmt"

	"svw.info/kropki/internal/csp"
	"svw.info/kropki/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles: cells
// whose candidate set shrinks to one value after a single forward-checking
// pass over the row, column, box, and dot constraints.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board, dots []domain.Dot) (domain.Hint, bool, error) {
	g := csp.NewGraph(b, dots)
	st := csp.NewStore(g, b)
	if csp.Propagate(st, domain.ForwardChecking, csp.NoVar) == csp.Wipeout {
		// board already contradicts itself, nothing sensible to suggest
		return domain.Hint{}, false, nil
	}
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if v, ok := st.Determined(g.VarAt(r, c)); ok {
				return domain.Hint{
					Message: fmt.Sprintf("Single: only %d fits here", v),
					Cells:   []domain.CellCoord{{Row: r, Col: c}},
					Value:   v,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
