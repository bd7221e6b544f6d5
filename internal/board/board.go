// internal/board/board.go
//
// Immutable rectangular grid of tiles.
// Responsibilities:
//   - Validate and normalize tile rows (uppercase, lone "Q" becomes "QU").
//   - Precompute the Moore neighborhood of every cell.
//   - Trace and validate player paths.
//   - Parse and render the compact "ROW/ROW/..." text form.

package board

import (
	"fmt"
	"strings"
	"unicode"
)

// Board is a read-only snapshot of tiles. Cells are addressed either by Coord
// or by row-major index.
type Board struct {
	rows, cols int
	tiles      []Tile
	adj        [][]int // neighbor indices per cell
}

// directions lists the 8 Moore neighborhood offsets.
var directions = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// New builds a board from rows of tile strings.
func New(rows [][]string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	b := &Board{rows: len(rows), cols: len(rows[0])}
	b.tiles = make([]Tile, 0, b.rows*b.cols)
	for r, row := range rows {
		if len(row) != b.cols {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRagged, r, len(row), b.cols)
		}
		for c, s := range row {
			t := normalizeTile(s)
			if t == "" {
				return nil, fmt.Errorf("%w at (%d,%d)", ErrEmptyTile, r, c)
			}
			b.tiles = append(b.tiles, t)
		}
	}
	b.adj = make([][]int, len(b.tiles))
	for i := range b.tiles {
		at := b.CoordOf(i)
		for _, d := range directions {
			n := Coord{Row: at.Row + d[0], Col: at.Col + d[1]}
			if b.InBounds(n) {
				b.adj[i] = append(b.adj[i], b.Index(n))
			}
		}
	}
	return b, nil
}

// MustNew is New for boards built by the program itself; malformed input panics.
func MustNew(rows [][]string) *Board {
	b, err := New(rows)
	if err != nil {
		panic(err)
	}
	return b
}

func normalizeTile(s string) Tile {
	t := Tile(strings.ToUpper(strings.TrimSpace(s)))
	if t == "Q" {
		return QU
	}
	return t
}

// Parse reads the compact text form: rows separated by '/', ',' or whitespace,
// one tile per letter, with "Q" or "QU" read as the QU tile.
func Parse(s string) (*Board, error) {
	fields := strings.FieldsFunc(strings.ToUpper(s), func(r rune) bool {
		return r == '/' || r == ',' || unicode.IsSpace(r)
	})
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		runes := []rune(f)
		row := make([]string, 0, len(runes))
		for i := 0; i < len(runes); i++ {
			if runes[i] == 'Q' {
				if i+1 < len(runes) && runes[i+1] == 'U' {
					i++
				}
				row = append(row, string(QU))
				continue
			}
			row = append(row, string(runes[i]))
		}
		rows = append(rows, row)
	}
	return New(rows)
}

// String renders the board in the form accepted by Parse.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < b.cols; c++ {
			sb.WriteString(string(b.tiles[r*b.cols+c]))
		}
	}
	return sb.String()
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Size returns N for an N×N board and 0 for a non-square one.
func (b *Board) Size() int {
	if b.rows != b.cols {
		return 0
	}
	return b.rows
}

// Cells returns the number of cells.
func (b *Board) Cells() int { return len(b.tiles) }

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Index converts a coordinate to its row-major index.
func (b *Board) Index(c Coord) int { return c.Row*b.cols + c.Col }

// CoordOf converts a row-major index to a coordinate.
func (b *Board) CoordOf(i int) Coord { return Coord{Row: i / b.cols, Col: i % b.cols} }

// At returns the tile at c.
func (b *Board) At(c Coord) Tile { return b.tiles[b.Index(c)] }

// TileAt returns the tile at row-major index i.
func (b *Board) TileAt(i int) Tile { return b.tiles[i] }

// NeighborsOf returns the row-major indices adjacent to index i. The slice
// is shared and must not be modified.
func (b *Board) NeighborsOf(i int) []int { return b.adj[i] }

// Neighbors returns the cells adjacent to c.
func (b *Board) Neighbors(c Coord) []Coord {
	idx := b.adj[b.Index(c)]
	out := make([]Coord, len(idx))
	for k, i := range idx {
		out[k] = b.CoordOf(i)
	}
	return out
}

// Letters returns a copy of the tiles as rows of strings.
func (b *Board) Letters() [][]string {
	out := make([][]string, b.rows)
	for r := range out {
		out[r] = make([]string, b.cols)
		for c := range out[r] {
			out[r][c] = string(b.tiles[r*b.cols+c])
		}
	}
	return out
}

// CheckPath validates that p is a non-empty, in-bounds, adjacent, non-repeating trace.
func (b *Board) CheckPath(p Path) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	seen := make(map[Coord]struct{}, len(p))
	for i, c := range p {
		if !b.InBounds(c) {
			return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: (%d,%d)", ErrRepeatedCell, c.Row, c.Col)
		}
		seen[c] = struct{}{}
		if i > 0 && !Adjacent(p[i-1], c) {
			return fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrNotAdjacent, p[i-1].Row, p[i-1].Col, c.Row, c.Col)
		}
	}
	return nil
}

// Word concatenates the tiles along p. p must be in bounds.
func (b *Board) Word(p Path) string {
	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(string(b.At(c)))
	}
	return sb.String()
}
