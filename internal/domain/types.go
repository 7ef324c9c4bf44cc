package domain

// Grid is a 9x9 Sudoku board; 0 means empty, 1..9 are placed digits.
// It is a value type: assignment copies the whole board.
type Grid [9][9]uint8

// Mask marks cells, typically the fixed givens of a puzzle.
type Mask [9][9]bool

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values Grid `json:"board"`
	Fixed  Mask `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint reveals the solution value for one cell.
type Hint struct {
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
	Message string    `json:"message,omitempty"`
}

// Puzzle is a generated Sudoku with its solution and metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Level     int    `json:"level,omitempty"`
	Clues     int    `json:"clues,omitempty"`
	Board     Board  `json:"board"`
	Solution  Grid   `json:"solution"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// SaveMagic and SaveVersion tag persisted game records so loaders can
// reject incompatible files.
const (
	SaveMagic   = uint32(0x53554431)
	SaveVersion = int32(2)
)

// SavedGame is the flat persisted form of a play session: the four grids
// plus gameplay counters.
type SavedGame struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Magic   uint32 `json:"magic"`
	Version int32  `json:"version"`

	Current  Grid `json:"current"`
	Fixed    Mask `json:"fixed"`
	Original Grid `json:"original"`
	Solution Grid `json:"solution"`

	Level     int   `json:"level,omitempty"`
	Score     int   `json:"score"`
	Mistakes  int   `json:"mistakes"`
	ElapsedS  int   `json:"elapsedSeconds"`
	GameOver  bool  `json:"gameOver"`
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// GameMeta is a lightweight listing entry.
type GameMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Level     int    `json:"level,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// CountFilled returns the number of non-empty cells.
func (g *Grid) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
