// internal/solver/solver.go
//
// Exhaustive word enumeration for a Boggle board.
//
// Algorithm:
//   - From every cell, run a depth-first walk that extends the current prefix
//     one tile at a time through the dictionary tree.
//   - A step whose prefix leaves the tree is abandoned immediately.
//   - Words of MinWordLength+ characters are recorded when the tree node is terminal.
//   - The visited marker is path-scoped: a cell is released on backtrack so a
//     different path may reuse it.
//
// All functions are pure with respect to their inputs and safe to call
// concurrently against a shared *dict.Index.

package solver

import (
	"sort"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/dict"
)

// Found pairs a word with one path that spells it.
type Found struct {
	Word string     `json:"word"`
	Path board.Path `json:"path"`
}

// walker holds per-start search scratch.
type walker struct {
	b       *board.Board
	visited []bool
	trail   []int
	// onWord is called for every terminal node reached; returning true stops the walk.
	onWord func(word string, trail []int) bool
}

// walk visits cell i with node n already positioned after prefix.
// It returns true when onWord asked to stop.
func (w *walker) walk(i int, prefix []byte, n *dict.Node) bool {
	next := n.Walk(string(w.b.TileAt(i)))
	if next == nil {
		return false
	}
	word := append(prefix, w.b.TileAt(i)...)

	w.visited[i] = true
	w.trail = append(w.trail, i)
	defer func() {
		w.visited[i] = false
		w.trail = w.trail[:len(w.trail)-1]
	}()

	if len(word) >= dict.MinWordLength && next.Terminal() {
		if w.onWord(string(word), w.trail) {
			return true
		}
	}
	for _, nb := range w.b.NeighborsOf(i) {
		if w.visited[nb] {
			continue
		}
		if w.walk(nb, word, next) {
			return true
		}
	}
	return false
}

// each runs the pruned walk from every cell, giving each start its own scratch.
func each(b *board.Board, ix *dict.Index, onWord func(string, []int) bool) {
	root := ix.Root()
	for start := 0; start < b.Cells(); start++ {
		w := &walker{b: b, visited: make([]bool, b.Cells()), onWord: onWord}
		if w.walk(start, make([]byte, 0, 16), root) {
			return
		}
	}
}

// FindAll returns every dictionary word reachable on b, deduplicated and
// sorted lexicographically.
func FindAll(b *board.Board, ix *dict.Index) []string {
	seen := make(map[string]struct{})
	each(b, ix, func(word string, _ []int) bool {
		seen[word] = struct{}{}
		return false
	})
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Count returns len(FindAll(b, ix)).
func Count(b *board.Board, ix *dict.Index) int {
	return len(FindAll(b, ix))
}

// FindAllWithPaths returns every reachable word with the first path found
// for it, sorted by word.
func FindAllWithPaths(b *board.Board, ix *dict.Index) []Found {
	paths := make(map[string]board.Path)
	each(b, ix, func(word string, trail []int) bool {
		if _, ok := paths[word]; !ok {
			paths[word] = toPath(b, trail)
		}
		return false
	})
	out := make([]Found, 0, len(paths))
	for w, p := range paths {
		out = append(out, Found{Word: w, Path: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// Find traces one path spelling word on b. The word need not be in ix's
// word set, only its characters matter.
func Find(b *board.Board, word string) (board.Path, bool) {
	target := dict.Build([]string{word})
	if target.Len() == 0 {
		return nil, false
	}
	var found board.Path
	each(b, target, func(w string, trail []int) bool {
		found = toPath(b, trail)
		return true
	})
	return found, found != nil
}

func toPath(b *board.Board, trail []int) board.Path {
	p := make(board.Path, len(trail))
	for k, i := range trail {
		p[k] = b.CoordOf(i)
	}
	return p
}
