package validator

import (
	"context"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

// IsPlacementSafe reports whether value v could be placed at (r, c) without
// duplicating v in the row, column, or containing box. The cell itself is
// skipped so an already-placed value can be re-checked in place.
func IsPlacementSafe(g domain.Grid, r, c int, v uint8) bool {
	for x := 0; x < 9; x++ {
		if x != c && g[r][x] == v {
			return false
		}
		if x != r && g[x][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if br+dr == r && bc+dc == c {
				continue
			}
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether no cell is empty.
func IsComplete(g domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// unitValid reports whether the nine values are a permutation of 1..9.
func unitValid(vals [9]uint8) bool {
	seen := 0
	for _, v := range vals {
		if v < 1 || v > 9 {
			return false
		}
		bit := 1 << v
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}

// IsFullyValid reports whether all 27 units (rows, columns, boxes) are
// permutations of 1..9.
func IsFullyValid(g domain.Grid) bool {
	var tmp [9]uint8
	for r := 0; r < 9; r++ {
		if !unitValid(g[r]) {
			return false
		}
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			tmp[r] = g[r][c]
		}
		if !unitValid(tmp) {
			return false
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			k := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					tmp[k] = g[br+dr][bc+dc]
					k++
				}
			}
			if !unitValid(tmp) {
				return false
			}
		}
	}
	return true
}

// RowHasNoDuplicates checks a single row unit, ignoring empty cells.
func RowHasNoDuplicates(g domain.Grid, r int) bool {
	seen := 0
	for c := 0; c < 9; c++ {
		v := g[r][c]
		if v == 0 {
			continue
		}
		bit := 1 << v
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}

// FastValidator implements the Validator port with a bitmask scan over all
// 27 units, collecting the cells where a duplicate is first observed.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
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
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
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
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
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
	return len(conf) == 0, conf, nil
}
