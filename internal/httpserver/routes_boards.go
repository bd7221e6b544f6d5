// internal/httpserver/routes_boards.go
//
// HTTP routes for boards.
//   - POST /boards        → generate a board for a size and difficulty
//   - POST /boards/solve  → every word on a ticketed board
//   - POST /boards/check  → judge a traced path
//   - POST /boards/hint   → suggest a word the player has not found

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/game"
	"github.com/robalobadob/boggle/internal/generator"
	"github.com/robalobadob/boggle/internal/hint"
	"github.com/robalobadob/boggle/internal/solver"
)

const (
	defaultSize = 4
	// maxSize bounds generation cost per request.
	maxSize = 8
)

// boardRes is returned by POST /boards and GET /boards/daily.
type boardRes struct {
	Board      [][]string `json:"board"`
	Key        string     `json:"key"`
	Ticket     string     `json:"ticket"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	Size       int        `json:"size"`
	Difficulty string     `json:"difficulty"`
	Seed       int64      `json:"seed"`
	WordCount  int        `json:"wordCount"`
	Attempts   int        `json:"attempts"`
	Matched    bool       `json:"matched"`
	Date       string     `json:"date,omitempty"`
}

// -----------------------------------------------------------------------------
// POST /boards

type newBoardReq struct {
	Size       int    `json:"size"`
	Difficulty string `json:"difficulty"`
	Seed       *int64 `json:"seed"` // optional, for reproducible boards
}

func (s *Server) handleNewBoard(w http.ResponseWriter, r *http.Request) {
	var req newBoardReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	seed := s.opts.Now().UnixNano() ^ rand.Int63()
	if req.Seed != nil {
		seed = *req.Seed
	}
	s.generate(w, r, seed, req.Size, req.Difficulty, "")
}

// generate runs the generator and writes a boardRes with a fresh ticket.
func (s *Server) generate(w http.ResponseWriter, r *http.Request, seed int64, size int, difficulty, date string) {
	if size == 0 {
		size = defaultSize
	}
	if size < 1 || size > maxSize {
		writeError(w, http.StatusBadRequest, "bad_size", "size must be between 1 and 8")
		return
	}
	d := generator.Medium
	if difficulty != "" {
		var err error
		if d, err = generator.ParseDifficulty(difficulty); err != nil {
			writeError(w, http.StatusBadRequest, "bad_difficulty", "difficulty must be Easy, Medium or Hard")
			return
		}
	}

	res, err := s.opts.Generator.Generate(r.Context(), seed, size, d)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusServiceUnavailable, "timeout", "")
			return
		}
		log.Error().Err(err).Msg("generate board")
		writeError(w, http.StatusInternalServerError, "generate_failed", "")
		return
	}
	tok, exp, err := s.signTicket(res.Board, d)
	if err != nil {
		log.Error().Err(err).Msg("sign ticket")
		writeError(w, http.StatusInternalServerError, "ticket_failed", "")
		return
	}
	writeJSON(w, http.StatusOK, boardRes{
		Board:      res.Board.Letters(),
		Key:        res.Board.String(),
		Ticket:     tok,
		ExpiresAt:  exp.UTC(),
		Size:       res.Size,
		Difficulty: string(res.Difficulty),
		Seed:       res.Seed,
		WordCount:  res.WordCount,
		Attempts:   res.Attempts,
		Matched:    res.Matched,
		Date:       date,
	})
}

// -----------------------------------------------------------------------------
// POST /boards/solve

type solveReq struct {
	Ticket string `json:"ticket"`
}

type solveRes struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	b, ok := s.boardFromRequest(w, r, req.Ticket)
	if !ok {
		return
	}
	words := s.solve(r.Context(), b)
	writeJSON(w, http.StatusOK, solveRes{Count: len(words), Words: words})
}

// solve returns the sorted words on b, consulting the cache first.
func (s *Server) solve(ctx context.Context, b *board.Board) []string {
	key := b.String()
	if words, ok := s.opts.Cache.Get(ctx, key); ok {
		return words
	}
	words := solver.FindAll(b, s.opts.Index)
	if words == nil {
		words = []string{}
	}
	if err := s.opts.Cache.Put(ctx, key, words); err != nil {
		log.Warn().Err(err).Str("board", key).Msg("cache solved board")
	}
	return words
}

// -----------------------------------------------------------------------------
// POST /boards/check

type checkReq struct {
	Ticket string     `json:"ticket"`
	Path   board.Path `json:"path"`
	Found  []string   `json:"found"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	b, ok := s.boardFromRequest(w, r, req.Ticket)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, game.Check(b, s.opts.Index, req.Path, foundSet(req.Found)))
}

// -----------------------------------------------------------------------------
// POST /boards/hint

type hintReq struct {
	Ticket    string   `json:"ticket"`
	Found     []string `json:"found"`
	Threshold *float64 `json:"threshold"`
}

type hintRes struct {
	Found     bool       `json:"found"`
	Word      string     `json:"word,omitempty"`
	Path      board.Path `json:"path,omitempty"`
	Frequency float64    `json:"frequency,omitempty"`
	Score     float64    `json:"score,omitempty"`
	Threshold float64    `json:"threshold"`
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	b, ok := s.boardFromRequest(w, r, req.Ticket)
	if !ok {
		return
	}
	threshold := s.hintThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if !hint.ValidThreshold(threshold) {
		writeError(w, http.StatusBadRequest, "bad_threshold", fmt.Sprintf("threshold must be between 0 and %g", hint.MaxThreshold))
		return
	}

	h, ok := s.opts.Hints.Suggest(r.Context(), b, foundSet(req.Found), threshold)
	if !ok {
		writeJSON(w, http.StatusOK, hintRes{Found: false})
		return
	}
	writeJSON(w, http.StatusOK, hintRes{
		Found:     true,
		Word:      h.Word,
		Path:      h.Path,
		Frequency: h.Frequency,
		Score:     h.Score,
		Threshold: h.Threshold,
	})
}

// foundSet normalizes client-supplied words to the uppercase set the engines use.
func foundSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToUpper(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
