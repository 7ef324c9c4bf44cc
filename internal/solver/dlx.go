package solver

import (
	"context"
	"errors"
	"time"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
	"github.com/nourmourtada10/sudoku-go/internal/ports"
)

// ErrNoSolution reports that the search exhausted the tree without finding
// an exact cover. It is an expected outcome, not a fault.
var ErrNoSolution = errors.New("no solution")

// DLXSolver implements Algorithm X with Knuth's dancing links over the
// index-arena matrix. Each call builds its own matrix, so concurrent solves
// never share state.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

// cover unlinks column c from the header list and removes every row linked
// into c from the other columns that row touches.
func (m *matrix) cover(c int32) {
	m.left[m.right[c]] = m.left[c]
	m.right[m.left[c]] = m.right[c]
	for i := m.down[c]; i != c; i = m.down[i] {
		for j := m.right[i]; j != i; j = m.right[j] {
			m.up[m.down[j]] = m.up[j]
			m.down[m.up[j]] = m.down[j]
			m.size[m.colOf[j]]--
		}
	}
}

// uncover is the exact inverse of cover; it must run in strict reverse order
// of the matching cover or the links are silently corrupted.
func (m *matrix) uncover(c int32) {
	for i := m.up[c]; i != c; i = m.up[i] {
		for j := m.left[i]; j != i; j = m.left[j] {
			m.size[m.colOf[j]]++
			m.up[m.down[j]] = j
			m.down[m.up[j]] = j
		}
	}
	m.left[m.right[c]] = c
	m.right[m.left[c]] = c
}

// chooseColumn returns the active column of minimum size, ties broken by
// encounter order walking right from the header.
func (m *matrix) chooseColumn() int32 {
	best := int32(-1)
	bestSize := int32(1 << 30)
	for c := m.right[head]; c != head; c = m.right[c] {
		if m.size[c] < bestSize {
			bestSize = m.size[c]
			best = c
			if bestSize == 0 {
				break
			}
		}
	}
	return best
}

// search runs Algorithm X, accumulating chosen row ids in m.sol. It stops
// once *found reaches want, leaving the matrix partially covered; on failure
// all covers have been undone.
func (m *matrix) search(ctx context.Context, k, want int, found *int) bool {
	if ctx.Err() != nil {
		return true // abandon the search; the matrix is discarded anyway
	}
	if m.right[head] == head {
		m.solLen = k
		*found++
		return *found >= want
	}
	c := m.chooseColumn()
	if c < 0 || m.size[c] == 0 {
		return false
	}
	m.cover(c)
	for i := m.down[c]; i != c; i = m.down[i] {
		m.steps++
		m.sol[k] = m.rowID[i]
		for j := m.right[i]; j != i; j = m.right[j] {
			m.cover(m.colOf[j])
		}
		if m.search(ctx, k+1, want, found) {
			return true
		}
		for j := m.left[i]; j != i; j = m.left[j] {
			m.uncover(m.colOf[j])
		}
	}
	m.uncover(c)
	return false
}

// Solve returns the first solution found by the deterministic traversal
// order, or ErrNoSolution. The input grid is never mutated.
func (s *DLXSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	m, err := newMatrix(g)
	if err != nil {
		return domain.Grid{}, ports.Stats{}, err
	}
	found := 0
	m.search(ctx, 0, 1, &found)
	st := ports.Stats{Nodes: m.steps, Duration: time.Since(start)}
	if found < 1 {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		return domain.Grid{}, st, ErrNoSolution
	}
	var out domain.Grid
	for i := 0; i < m.solLen; i++ {
		r, c, v := decodeRow(m.sol[i])
		out[r][c] = v
	}
	return out, st, nil
}

// Unique reports whether the grid has exactly one solution, searching until
// a second one is found or the tree is exhausted.
func (s *DLXSolver) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	m, err := newMatrix(g)
	if err != nil {
		return false, ports.Stats{}, err
	}
	found := 0
	m.search(ctx, 0, 2, &found)
	st := ports.Stats{Nodes: m.steps, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return found == 1, st, nil
}
