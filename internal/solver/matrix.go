package solver

import "errors"

// Exact-cover mapping for a 9x9 Sudoku: 324 columns (constraints) and up to
// 729 candidate rows, one per (r,c,v) triple.
// Columns: 0..80   -> cell (r,c) occupied
//          81..161 -> row r has number v
//          162..242-> col c has number v
//          243..323-> box b has number v, b = (r/3)*3 + (c/3)
const (
	nSize  = 9
	nCells = nSize * nSize // 81
	nCols  = 4 * nCells    // 324
	nRows  = nCells * nSize

	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

// Node arena layout: indices 0..nCols-1 are column heads, nCols is the list
// header, data nodes are appended after. A full matrix needs at most four
// nodes per candidate row.
const (
	head     = nCols
	maxNodes = nCols + 1 + nRows*4
)

var ErrInvalidGrid = errors.New("grid contains a value outside 0..9")

// matrix is a dancing-links structure stored as index arrays rather than
// pointers. It is built fresh for each solve call from a grid snapshot and
// released in bulk when the call returns; nodes are never shared or reused
// across solves.
type matrix struct {
	left, right [maxNodes]int32
	up, down    [maxNodes]int32
	colOf       [maxNodes]int32 // owning column of each data node
	rowID       [maxNodes]int32 // candidate row id (r*81 + c*9 + v-1)
	size        [nCols]int32    // live count of rows linked into each column
	n           int32           // next free node index

	sol    [nCells]int32 // row ids of the current partial selection
	solLen int
	steps  int // candidate rows tried during search
}

func rowIndex(r, c, v int) int32 {
	return int32(r*81 + c*9 + (v - 1))
}

func rowColumns(r, c, v int) [4]int32 {
	box := (r/3)*3 + c/3
	return [4]int32{
		colCell + int32(r*nSize+c),
		colRowNum + int32(r*nSize+(v-1)),
		colColNum + int32(c*nSize+(v-1)),
		colBoxNum + int32(box*nSize+(v-1)),
	}
}

func decodeRow(id int32) (r, c int, v uint8) {
	r = int(id) / 81
	c = (int(id) % 81) / 9
	v = uint8(int(id)%9) + 1
	return
}

// newMatrix builds the constraint matrix for a grid. A given cell yields a
// single candidate row; an empty cell yields nine. A grid that already
// violates the rules still builds fine, it just has no exact cover.
func newMatrix(g [9][9]uint8) (*matrix, error) {
	m := &matrix{}
	for c := int32(0); c < nCols; c++ {
		if c == 0 {
			m.left[c] = head
		} else {
			m.left[c] = c - 1
		}
		if c == nCols-1 {
			m.right[c] = head
		} else {
			m.right[c] = c + 1
		}
		m.up[c] = c
		m.down[c] = c
		m.colOf[c] = c
	}
	m.left[head] = nCols - 1
	m.right[head] = 0
	m.up[head] = head
	m.down[head] = head
	m.n = nCols + 1

	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			if g[r][c] > 9 {
				return nil, ErrInvalidGrid
			}
			sv, ev := 1, 9
			if g[r][c] != 0 {
				sv, ev = int(g[r][c]), int(g[r][c])
			}
			for v := sv; v <= ev; v++ {
				id := rowIndex(r, c, v)
				prev := int32(-1)
				for _, col := range rowColumns(r, c, v) {
					prev = m.addNode(id, col, prev)
				}
			}
		}
	}
	return m, nil
}

// addNode appends a node for candidate row id into column col, linking it
// after prev within the row's circular horizontal list (prev < 0 starts one).
func (m *matrix) addNode(id, col, prev int32) int32 {
	node := m.n
	m.n++
	m.colOf[node] = col
	m.rowID[node] = id

	// vertical insert at the bottom of the column
	m.down[node] = col
	m.up[node] = m.up[col]
	m.down[m.up[col]] = node
	m.up[col] = node
	m.size[col]++

	if prev < 0 {
		m.left[node] = node
		m.right[node] = node
	} else {
		m.left[node] = prev
		m.right[node] = m.right[prev]
		m.left[m.right[prev]] = node
		m.right[prev] = node
	}
	return node
}
