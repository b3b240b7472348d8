// Package csp implements the Kropki Sudoku constraint engine: the
// constraint graph, a trail-backed domain store with reversible pruning,
// forward-checking and GAC propagators, MRV/LCV ordering heuristics, and
// the backtracking search driver that ties them together.
package csp

import "math/bits"

// VarID indexes a variable (cell) in row-major order.
type VarID int

// Variable is one cell of the board.
type Variable struct {
	Row, Col int
	Fixed    bool // given by the puzzle; its domain stays a singleton
}

// Domains are bitmasks over candidate values: bit v-1 set means value v
// (1..dim) is still admissible. dim is at most 9, so uint16 suffices.
type mask uint16

func fullMask(dim int) mask { return mask(1)<<dim - 1 }

func bitOf(v uint8) mask { return mask(1) << (v - 1) }

func (m mask) has(v uint8) bool { return m&bitOf(v) != 0 }

func (m mask) size() int { return bits.OnesCount16(uint16(m)) }

// single returns the only value of a singleton mask.
func (m mask) single() uint8 { return uint8(bits.TrailingZeros16(uint16(m))) + 1 }

// values expands the mask into ascending candidate values.
func (m mask) values(dim int) []uint8 {
	out := make([]uint8, 0, m.size())
	for v := uint8(1); v <= uint8(dim); v++ {
		if m.has(v) {
			out = append(out, v)
		}
	}
	return out
}
