// internal/board/types.go
//
// Core type definitions for the Boggle board model.
// Defines:
//   - Tile:  one letter unit on the board ("QU" is a single tile).
//   - Coord: a (row, col) cell position.
//   - Path:  an ordered trace of cells spelling a candidate word.

package board

import "errors"

// Tile is a 1–2 character uppercase letter unit.
type Tile string

// QU is the digraph tile produced by a "Q" die face.
const QU Tile = "QU"

// Coord identifies a cell on the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Path is an ordered sequence of cells. A valid path never repeats a cell and
// each step moves to one of the 8 surrounding cells.
type Path []Coord

// Board construction errors.
var (
	ErrEmpty     = errors.New("board: no rows")
	ErrRagged    = errors.New("board: rows have different lengths")
	ErrEmptyTile = errors.New("board: empty tile")
)

// Path validation errors. These describe an invalid player submission and
// are reported as values, not failures.
var (
	ErrEmptyPath    = errors.New("path is empty")
	ErrOutOfBounds  = errors.New("path leaves the board")
	ErrNotAdjacent  = errors.New("path step is not adjacent")
	ErrRepeatedCell = errors.New("path reuses a cell")
)

// Adjacent reports whether a and b are distinct cells within Chebyshev distance 1.
func Adjacent(a, b Coord) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if a == b {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}
