// Package text implements the textual puzzle format.
//
// A puzzle reads as: one line holding the dimension (6 or 9), then that
// many rows of digits (0 marks an empty cell), then zero or more dot
// lines of the form "B r1 c1 r2 c2" or "W r1 c1 r2 c2". Blank lines and
// lines starting with '#' are ignored. All input validation lives here;
// the solving core assumes well-formed boards.
package text

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/kropki/internal/domain"
)

// ParsePuzzle reads a puzzle from r.
func ParsePuzzle(r io.Reader) (*domain.Puzzle, error) {
	sc := bufio.NewScanner(r)
	lines := make([]string, 0, 16)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty puzzle")
	}

	dim, err := strconv.Atoi(lines[0])
	if err != nil || (dim != 6 && dim != 9) {
		return nil, fmt.Errorf("invalid dimension %q: must be 6 or 9", lines[0])
	}
	if len(lines) < 1+dim {
		return nil, fmt.Errorf("expected %d board rows, got %d", dim, len(lines)-1)
	}

	p := &domain.Puzzle{Board: domain.Board{Dim: dim}}
	for r := 0; r < dim; r++ {
		row := lines[1+r]
		if len(row) != dim {
			return nil, fmt.Errorf("row %d: expected %d digits, got %q", r, dim, row)
		}
		for c := 0; c < dim; c++ {
			d := row[c]
			if d < '0' || d > '9' {
				return nil, fmt.Errorf("row %d col %d: invalid cell %q", r, c, d)
			}
			v := uint8(d - '0')
			if int(v) > dim {
				return nil, fmt.Errorf("row %d col %d: value %d out of range 1..%d", r, c, v, dim)
			}
			p.Board.Values[r][c] = v
			p.Board.Fixed[r][c] = v != 0
		}
	}

	for _, line := range lines[1+dim:] {
		dot, err := parseDot(line, dim)
		if err != nil {
			return nil, err
		}
		p.Dots = append(p.Dots, dot)
	}
	return p, nil
}

func parseDot(line string, dim int) (domain.Dot, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return domain.Dot{}, fmt.Errorf("invalid dot line %q: want COLOR r1 c1 r2 c2", line)
	}
	var color domain.DotColor
	switch strings.ToUpper(fields[0]) {
	case "B":
		color = domain.Black
	case "W":
		color = domain.White
	default:
		return domain.Dot{}, fmt.Errorf("invalid dot color %q: want B or W", fields[0])
	}
	coords := make([]int, 4)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n >= dim {
			return domain.Dot{}, fmt.Errorf("dot coordinate %q out of range 0..%d", f, dim-1)
		}
		coords[i] = n
	}
	dr := coords[0] - coords[2]
	dc := coords[1] - coords[3]
	if dr*dr+dc*dc != 1 {
		return domain.Dot{}, fmt.Errorf("dot %q joins non-adjacent cells", line)
	}
	return domain.Dot{
		A:     domain.CellCoord{Row: coords[0], Col: coords[1]},
		B:     domain.CellCoord{Row: coords[2], Col: coords[3]},
		Color: color,
	}, nil
}

// RenderBoard writes the grid as dim rows of digits.
func RenderBoard(w io.Writer, b *domain.Board) error {
	var sb strings.Builder
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			sb.WriteByte('0' + b.Values[r][c])
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderPuzzle writes a full puzzle back in the input format, dots
// included, so generated puzzles round-trip through ParsePuzzle.
func RenderPuzzle(w io.Writer, p *domain.Puzzle) error {
	if _, err := fmt.Fprintf(w, "%d\n", p.Board.Dim); err != nil {
		return err
	}
	if err := RenderBoard(w, &p.Board); err != nil {
		return err
	}
	for _, d := range p.Dots {
		color := "B"
		if d.Color == domain.White {
			color = "W"
		}
		if _, err := fmt.Fprintf(w, "%s %d %d %d %d\n", color, d.A.Row, d.A.Col, d.B.Row, d.B.Col); err != nil {
			return err
		}
	}
	return nil
}
