// internal/hint/engine.go
//
// Frequency-guided hint search.
//
// Responsibilities:
//   - Run one beam search per board cell concurrently (errgroup), each keeping
//     the best BeamWidth partial paths ranked by frequency score.
//   - Accept the first dictionary word that is not yet found and whose score
//     meets the current threshold; signal sibling tasks to stop.
//   - Pick the most frequent word when several tasks report before stopping.
//   - Lower the threshold by ThresholdStep and retry until 0 has been tried.
//
// Notes:
//   - Tasks share only the stop flag, the result collector (mutex-guarded) and
//     the per-call oracle memo (sync.Map); search state is per task and
//     candidates are copied on expansion.
//   - Nothing found is a normal outcome reported as (Result{}, false).

package hint

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/dict"
)

const (
	// DefaultThreshold is the first score a hint must reach.
	DefaultThreshold = 4.0
	// MaxThreshold is the highest score FrequencyScore can return
	// (log10(1 * 1e8)); higher starting thresholds are clamped to it.
	MaxThreshold = 8.0

	minThresholdStep = 0.01
)

// ValidThreshold reports whether t is a usable starting threshold.
func ValidThreshold(t float64) bool {
	return !math.IsNaN(t) && t >= 0 && t <= MaxThreshold
}

// Config tunes the search. Zero fields take the DefaultConfig value.
type Config struct {
	Lang          string  // language passed to the oracle
	BeamWidth     int     // partial paths kept per task per round
	MaxWordLength int     // longest word considered, in characters
	ThresholdStep float64 // amount the threshold drops between rounds
}

// DefaultConfig returns the standard search settings.
func DefaultConfig() Config {
	return Config{Lang: "en", BeamWidth: 2, MaxWordLength: 8, ThresholdStep: 1.0}
}

// Result is an accepted hint.
type Result struct {
	Word      string     `json:"word"`
	Path      board.Path `json:"path"`
	Frequency float64    `json:"frequency"`
	Score     float64    `json:"score"`
	Threshold float64    `json:"threshold"`
}

// Engine finds hint words on boards. It is safe for concurrent use.
type Engine struct {
	index  *dict.Index
	oracle Oracle
	cfg    Config
}

// New wires an engine over a dictionary and frequency oracle.
func New(ix *dict.Index, oracle Oracle, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Lang == "" {
		cfg.Lang = def.Lang
	}
	if cfg.BeamWidth <= 0 {
		cfg.BeamWidth = def.BeamWidth
	}
	if cfg.MaxWordLength < dict.MinWordLength {
		cfg.MaxWordLength = def.MaxWordLength
	}
	if cfg.ThresholdStep <= 0 {
		cfg.ThresholdStep = def.ThresholdStep
	}
	if cfg.ThresholdStep < minThresholdStep {
		cfg.ThresholdStep = minThresholdStep
	}
	return &Engine{index: ix, oracle: oracle, cfg: cfg}
}

// Config returns the effective settings.
func (e *Engine) Config() Config { return e.cfg }

// Suggest returns one word on b that is not in found (uppercase words),
// starting at threshold and relaxing it down to 0. Thresholds above
// MaxThreshold start at MaxThreshold; NaN and negative values start at 0.
// The second return value is false when no word qualifies even at
// threshold 0 or ctx is done.
func (e *Engine) Suggest(ctx context.Context, b *board.Board, found map[string]struct{}, threshold float64) (Result, bool) {
	m := &memo{oracle: e.oracle, lang: e.cfg.Lang}
	for _, t := range e.schedule(threshold) {
		if ctx.Err() != nil {
			return Result{}, false
		}
		if r, ok := e.round(ctx, b, found, t, m); ok {
			log.Debug().Str("word", r.Word).Float64("threshold", t).Float64("frequency", r.Frequency).Msg("hint found")
			return r, true
		}
		log.Debug().Float64("threshold", t).Msg("no hint at threshold")
	}
	return Result{}, false
}

// schedule lists the thresholds tried, from the clamped initial value down
// to 0. Its length is at most MaxThreshold/minThresholdStep + 1.
func (e *Engine) schedule(threshold float64) []float64 {
	switch {
	case math.IsNaN(threshold) || threshold <= 0:
		return []float64{0}
	case threshold > MaxThreshold:
		threshold = MaxThreshold
	}
	step := e.cfg.ThresholdStep
	n := int(math.Ceil(threshold / step))
	out := make([]float64, 0, n+1)
	for k := 0; k < n; k++ {
		if t := threshold - float64(k)*step; t > 1e-9 {
			out = append(out, t)
		}
	}
	return append(out, 0)
}

// round runs one concurrent search at a fixed threshold.
func (e *Engine) round(ctx context.Context, b *board.Board, found map[string]struct{}, threshold float64, m *memo) (Result, bool) {
	var (
		stop atomic.Bool
		mu   sync.Mutex
		hits []Result
	)
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < b.Cells(); start++ {
		g.Go(func() error {
			r, ok := e.search(gctx, b, start, found, threshold, m, &stop)
			if !ok {
				return nil
			}
			mu.Lock()
			hits = append(hits, r)
			mu.Unlock()
			stop.Store(true)
			return nil
		})
	}
	_ = g.Wait()
	return best(hits)
}

// best picks the most frequent hit; ties go to the earliest arrival.
func best(hits []Result) (Result, bool) {
	if len(hits) == 0 {
		return Result{}, false
	}
	top := hits[0]
	for _, h := range hits[1:] {
		if h.Frequency > top.Frequency {
			top = h
		}
	}
	return top, true
}

// candidate is one partial path in a task's beam. Candidates are values:
// extend copies path and visited so beam siblings never share state.
type candidate struct {
	cell    int
	word    string
	node    *dict.Node
	path    []int
	visited []bool
	freq    float64
	score   float64
}

func (c candidate) extend(cell int, tile string) candidate {
	path := make([]int, len(c.path), len(c.path)+1)
	copy(path, c.path)
	visited := make([]bool, len(c.visited))
	copy(visited, c.visited)
	visited[cell] = true
	return candidate{
		cell:    cell,
		word:    c.word + tile,
		node:    c.node.Walk(tile),
		path:    append(path, cell),
		visited: visited,
	}
}

// rate fills in the candidate's frequency and score.
func (e *Engine) rate(c *candidate, m *memo) {
	if utf8.RuneCountInString(c.word) == 1 {
		r, _ := utf8.DecodeRuneInString(c.word)
		c.score = LetterScore(r)
		return
	}
	c.freq = m.frequency(strings.ToLower(c.word))
	c.score = FrequencyScore(c.freq)
}

func (e *Engine) accepts(c candidate, found map[string]struct{}, threshold float64) bool {
	if utf8.RuneCountInString(c.word) < dict.MinWordLength || !c.node.Terminal() {
		return false
	}
	if _, done := found[c.word]; done {
		return false
	}
	return c.score >= threshold
}

// search runs the beam from one starting cell. The stop flag and ctx are
// checked between expansion rounds.
func (e *Engine) search(ctx context.Context, b *board.Board, start int, found map[string]struct{}, threshold float64, m *memo, stop *atomic.Bool) (Result, bool) {
	tile := string(b.TileAt(start))
	first := candidate{
		cell:    start,
		word:    tile,
		node:    e.index.Root().Walk(tile),
		path:    []int{start},
		visited: make([]bool, b.Cells()),
	}
	if first.node == nil {
		return Result{}, false
	}
	first.visited[start] = true
	e.rate(&first, m)
	if e.accepts(first, found, threshold) {
		return e.result(b, first, threshold), true
	}

	beam := []candidate{first}
	for len(beam) > 0 {
		if stop.Load() || ctx.Err() != nil {
			return Result{}, false
		}
		var next []candidate
		for _, c := range beam {
			for _, nb := range b.NeighborsOf(c.cell) {
				if c.visited[nb] {
					continue
				}
				t := string(b.TileAt(nb))
				if len(c.word)+len(t) > e.cfg.MaxWordLength || c.node.Walk(t) == nil {
					continue
				}
				nc := c.extend(nb, t)
				e.rate(&nc, m)
				if e.accepts(nc, found, threshold) {
					return e.result(b, nc, threshold), true
				}
				next = append(next, nc)
			}
		}
		sort.SliceStable(next, func(i, j int) bool { return next[i].score > next[j].score })
		if len(next) > e.cfg.BeamWidth {
			next = next[:e.cfg.BeamWidth]
		}
		beam = next
	}
	return Result{}, false
}

func (e *Engine) result(b *board.Board, c candidate, threshold float64) Result {
	p := make(board.Path, len(c.path))
	for k, i := range c.path {
		p[k] = b.CoordOf(i)
	}
	return Result{Word: c.word, Path: p, Frequency: c.freq, Score: c.score, Threshold: threshold}
}
