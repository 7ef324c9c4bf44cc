package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
	"github.com/nourmourtada10/sudoku-go/internal/ports"
	"github.com/nourmourtada10/sudoku-go/internal/validator"
)

var ErrGenerationFailed = errors.New("failed to generate puzzle")

// Generator builds puzzles by filling a random full grid, carving out cells
// down to a clue target, and verifying the result with a Solver.
type Generator struct {
	solver ports.Solver
	opts   *Options
}

// New wires a generator that uses the given solver for its correctness and
// uniqueness checks.
func New(s ports.Solver, opts *Options) *Generator {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Generator{solver: s, opts: opts}
}

// CluesForLevel maps a difficulty level to a clue target: monotonically
// decreasing, clamped so higher levels always mean fewer clues.
func CluesForLevel(level int) int {
	if level < domain.MinLevel {
		level = domain.MinLevel
	}
	if level > domain.MaxLevel {
		level = domain.MaxLevel
	}
	span := easiestLevelClues - hardestLevelClues
	clues := easiestLevelClues - (level-domain.MinLevel)*span/(domain.MaxLevel-domain.MinLevel)
	return clampClues(clues)
}

func clampClues(n int) int {
	if n < MinClues {
		return MinClues
	}
	if n > MaxClues {
		return MaxClues
	}
	return n
}

// FillGrid produces a complete rule-valid grid by row-major randomized
// backtracking: each empty cell tries the digits 1..9 in shuffled order.
// The recursion terminates with ok=false only on cancellation or an
// unfillable input, which cannot happen starting from an empty grid.
func FillGrid(ctx context.Context, rng *rand.Rand) (domain.Grid, bool) {
	var g domain.Grid
	ok := fillCellRowWise(ctx, rng, &g, 0, 0)
	return g, ok
}

func fillCellRowWise(ctx context.Context, rng *rand.Rand, g *domain.Grid, r, c int) bool {
	if r == 9 {
		return true
	}
	if ctx.Err() != nil {
		return false
	}
	nr, nc := r, c+1
	if nc == 9 {
		nr, nc = r+1, 0
	}
	if g[r][c] != 0 {
		return fillCellRowWise(ctx, rng, g, nr, nc)
	}
	var vals [9]uint8
	for i := range vals {
		vals[i] = uint8(i + 1)
	}
	rng.Shuffle(9, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	for _, v := range vals {
		if validator.IsPlacementSafe(*g, r, c, v) {
			g[r][c] = v
			if fillCellRowWise(ctx, rng, g, nr, nc) {
				return true
			}
			g[r][c] = 0 // undo in strict reverse order of placement
		}
	}
	return false
}

// MakePuzzle removes cells from a full grid in random order until the clue
// target is reached, clamping the target into [MinClues, MaxClues]. The
// returned mask marks the remaining givens.
func MakePuzzle(rng *rand.Rand, full domain.Grid, targetClues int) (domain.Grid, domain.Mask) {
	targetClues = clampClues(targetClues)
	puzzle := full

	idx := make([]int, 81)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(81, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	filled := 81
	for _, pos := range idx {
		if filled <= targetClues {
			break
		}
		r, c := pos/9, pos%9
		if puzzle[r][c] == 0 {
			continue
		}
		puzzle[r][c] = 0
		filled--
	}

	var fixed domain.Mask
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = puzzle[r][c] != 0
		}
	}
	return puzzle, fixed
}

// makePuzzleUnique is the uniqueness-preserving variant: a removal that
// introduces a second solution is reverted. It may stop above the target
// when the budget runs out or no further cell can be cleared.
func (g *Generator) makePuzzleUnique(ctx context.Context, rng *rand.Rand, full domain.Grid, targetClues int) (domain.Grid, domain.Mask, int) {
	targetClues = clampClues(targetClues)
	puzzle := full
	nodes := 0

	idx := make([]int, 81)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(81, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	deadline := time.Now().Add(g.opts.Timeout)
	filled := 81
	for _, pos := range idx {
		if filled <= targetClues || time.Now().After(deadline) {
			break
		}
		r, c := pos/9, pos%9
		if puzzle[r][c] == 0 {
			continue
		}
		old := puzzle[r][c]
		puzzle[r][c] = 0
		unique, st, err := g.solver.Unique(ctx, puzzle)
		nodes += st.Nodes
		if err != nil || !unique {
			puzzle[r][c] = old
			continue
		}
		filled--
	}

	var fixed domain.Mask
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = puzzle[r][c] != 0
		}
	}
	return puzzle, fixed, nodes
}

// Generate produces a puzzle, its fixed mask, and its solution. The puzzle is
// solved once as a correctness check; if that solve fails (it cannot for a
// subset of a valid full grid) the known full grid is returned as the
// solution instead of propagating the failure.
func (g *Generator) Generate(ctx context.Context, seed int64, level int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	clues := g.opts.ClueCount
	if clues <= 0 {
		clues = CluesForLevel(level)
	}

	full, ok := FillGrid(ctx, rng)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Duration: time.Since(start)}, ErrGenerationFailed
	}

	var puzzle domain.Grid
	var fixed domain.Mask
	nodes := 0
	if g.opts.EnsureUnique {
		puzzle, fixed, nodes = g.makePuzzleUnique(ctx, rng, full, clues)
	} else {
		puzzle, fixed = MakePuzzle(rng, full, clues)
	}

	solution, st, err := g.solver.Solve(ctx, puzzle)
	nodes += st.Nodes
	if err != nil {
		solution = full
	}

	p := &domain.Puzzle{
		Seed:      seed,
		Level:     level,
		Clues:     puzzle.CountFilled(),
		Board:     domain.Board{Values: puzzle, Fixed: fixed},
		Solution:  solution,
		CreatedAt: time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
