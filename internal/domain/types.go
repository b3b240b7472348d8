package domain

// Board holds current values and which cells are fixed givens.
// Dim is 6 or 9; only the top-left Dim×Dim corner of the arrays is used.
type Board struct {
	Dim    int         `json:"dim"`
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Dot is a Kropki dot between two orthogonally adjacent cells.
type Dot struct {
	A     CellCoord `json:"a"`
	B     CellCoord `json:"b"`
	Color DotColor  `json:"color"`
}

// Hint describes a strategy suggestion for a client.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Value   uint8       `json:"value,omitempty"`
}

// Puzzle is a persisted Kropki Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	Dots       []Dot      `json:"dots,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// BoxShape gives the box shape for a board dimension.
// 6×6 boards use 3-row × 2-column boxes, 9×9 boards use 3×3.
func BoxShape(dim int) (rows, cols int) {
	if dim == 6 {
		return 3, 2
	}
	return 3, 3
}
