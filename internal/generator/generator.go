// internal/generator/generator.go
//
// Board generation calibrated to a difficulty band.
//
// Algorithm flow:
//   - Roll a board (dice for 4×4 and 5×5, weighted letters otherwise).
//   - Count findable words with the solver.
//   - Return the first board whose count falls in the band for (size, difficulty).
//   - After MaxAttempts misses, return the last board with Matched=false.

package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/dict"
	"github.com/robalobadob/boggle/internal/solver"
)

// DefaultMaxAttempts bounds the generate/count loop.
const DefaultMaxAttempts = 50

var (
	ErrInvalidSize       = errors.New("generator: board size must be at least 1")
	ErrUnknownDifficulty = errors.New("generator: unknown difficulty")
)

// Result describes a generated board.
type Result struct {
	Board      *board.Board
	Size       int
	Difficulty Difficulty
	Seed       int64
	WordCount  int
	Attempts   int
	// Matched is false when the attempt budget ran out and Board is the
	// last best-effort roll.
	Matched  bool
	Duration time.Duration
}

// Generator rolls boards against a dictionary and band table.
type Generator struct {
	Index       *dict.Index
	Bands       Bands
	MaxAttempts int
}

// New wires a generator with the default attempt budget. A nil bands table
// uses DefaultBands.
func New(ix *dict.Index, bands Bands) *Generator {
	if bands == nil {
		bands = DefaultBands()
	}
	return &Generator{Index: ix, Bands: bands, MaxAttempts: DefaultMaxAttempts}
}

// Generate rolls boards from seed until one matches the band for (size, d).
// Cancelling ctx stops the loop; the last board rolled so far is returned
// unmatched, or ctx.Err() if none was rolled.
func (g *Generator) Generate(ctx context.Context, seed int64, size int, d Difficulty) (*Result, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if _, err := ParseDifficulty(string(d)); err != nil {
		return nil, err
	}
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	attempts := g.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	res := &Result{Size: size, Difficulty: d, Seed: seed}
	for i := 1; i <= attempts; i++ {
		if err := ctx.Err(); err != nil {
			if res.Board == nil {
				return nil, err
			}
			break
		}
		b := roll(rng, size)
		count := solver.Count(b, g.Index)
		res.Board, res.WordCount, res.Attempts = b, count, i
		log.Debug().Int("attempt", i).Int("words", count).Str("board", b.String()).Msg("rolled board")

		if g.Bands.Matches(size, d, count) {
			res.Matched = true
			res.Duration = time.Since(start)
			log.Info().Int("words", count).Str("difficulty", string(d)).Int("attempts", i).Msg("board generated")
			return res, nil
		}
	}
	res.Duration = time.Since(start)
	log.Warn().
		Str("difficulty", string(d)).
		Int("size", size).
		Int("attempts", res.Attempts).
		Int("words", res.WordCount).
		Msg("could not generate board meeting difficulty, using last attempt")
	return res, nil
}
