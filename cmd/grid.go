package cmd

import (
	"fmt"
	"strings"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

// formatGrid renders a grid with box separators; empty cells show as dots.
func formatGrid(g domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteString("| ")
			}
			if g[r][c] == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", g[r][c])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// parseGrid reads 81 cells from text. Digits 1-9 are values, '0' and '.' are
// empty cells; whitespace and separator characters are ignored.
func parseGrid(s string) (domain.Grid, error) {
	var g domain.Grid
	n := 0
	for _, ch := range s {
		var v uint8
		switch {
		case ch >= '1' && ch <= '9':
			v = uint8(ch - '0')
		case ch == '0' || ch == '.' || ch == '_':
			v = 0
		default:
			continue // separators, whitespace
		}
		if n >= 81 {
			return domain.Grid{}, fmt.Errorf("too many cells: expected 81")
		}
		g[n/9][n%9] = v
		n++
	}
	if n != 81 {
		return domain.Grid{}, fmt.Errorf("expected 81 cells, got %d", n)
	}
	return g, nil
}
