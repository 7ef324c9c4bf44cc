package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
	"github.com/nourmourtada10/sudoku-go/internal/ports"
)

// SATSolver encodes the grid as CNF and delegates to the gini SAT solver.
// One variable per (row, col, value) triple, same indexing as the exact-cover
// candidate rows.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func satLit(r, c, v int) z.Lit {
	return z.Var(r*81 + c*9 + v + 1).Pos() // v in 0..8
}

// encode adds the Sudoku constraints: every cell holds at least one value,
// and no value repeats within a row, column, or box. Givens become unit
// clauses.
func encode(g *gini.Gini, grid domain.Grid) {
	// every cell has a number
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 0; v < 9; v++ {
				g.Add(satLit(r, c, v))
			}
			g.Add(0)
		}
	}
	// at most one occurrence of each number per row
	for v := 0; v < 9; v++ {
		for r := 0; r < 9; r++ {
			for ca := 0; ca < 9; ca++ {
				for cb := ca + 1; cb < 9; cb++ {
					g.Add(satLit(r, ca, v).Not())
					g.Add(satLit(r, cb, v).Not())
					g.Add(0)
				}
			}
		}
	}
	// at most one occurrence of each number per column
	for v := 0; v < 9; v++ {
		for c := 0; c < 9; c++ {
			for ra := 0; ra < 9; ra++ {
				for rb := ra + 1; rb < 9; rb++ {
					g.Add(satLit(ra, c, v).Not())
					g.Add(satLit(rb, c, v).Not())
					g.Add(0)
				}
			}
		}
	}
	// at most one occurrence of each number per box
	for v := 0; v < 9; v++ {
		for br := 0; br < 9; br += 3 {
			for bc := 0; bc < 9; bc += 3 {
				var cells [9][2]int
				k := 0
				for dr := 0; dr < 3; dr++ {
					for dc := 0; dc < 3; dc++ {
						cells[k] = [2]int{br + dr, bc + dc}
						k++
					}
				}
				for i := 0; i < 9; i++ {
					for j := i + 1; j < 9; j++ {
						g.Add(satLit(cells[i][0], cells[i][1], v).Not())
						g.Add(satLit(cells[j][0], cells[j][1], v).Not())
						g.Add(0)
					}
				}
			}
		}
	}
	// givens
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] != 0 {
				g.Add(satLit(r, c, int(grid[r][c])-1))
				g.Add(0)
			}
		}
	}
}

func readModel(g *gini.Gini) domain.Grid {
	var out domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 0; v < 9; v++ {
				if g.Value(satLit(r, c, v)) {
					out[r][c] = uint8(v + 1)
					break
				}
			}
		}
	}
	return out
}

func (s *SATSolver) Solve(ctx context.Context, grid domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] > 9 {
				return domain.Grid{}, ports.Stats{}, ErrInvalidGrid
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return domain.Grid{}, ports.Stats{}, err
	}
	g := gini.New()
	encode(g, grid)
	if g.Solve() != 1 {
		return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	out := readModel(g)
	return out, ports.Stats{Duration: time.Since(start)}, nil
}

// Unique solves once, blocks the found model with a clause negating its 81
// cell assignments, and checks whether a second model exists.
func (s *SATSolver) Unique(ctx context.Context, grid domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{}, err
	}
	g := gini.New()
	encode(g, grid)
	if g.Solve() != 1 {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	first := readModel(g)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.Add(satLit(r, c, int(first[r][c])-1).Not())
		}
	}
	g.Add(0)
	unique := g.Solve() != 1
	return unique, ports.Stats{Duration: time.Since(start)}, nil
}
